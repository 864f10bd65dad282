package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_OptionLists(t *testing.T) {
	c := Default()

	if !c.IsService("Web Development") || !c.IsService("Other") {
		t.Fatal("expected default services present")
	}
	if c.IsService("Underwater Welding") {
		t.Fatal("unexpected service accepted")
	}
	if !c.IsBudgetRange("Over $100,000") || c.IsBudgetRange("lots") {
		t.Fatal("budget range lookup broken")
	}
	if !c.IsTimeframe("ASAP") || c.IsTimeframe("soon") {
		t.Fatal("timeframe lookup broken")
	}
}

func TestDefault_DisposableDomainsCaseInsensitive(t *testing.T) {
	c := Default()

	for _, domain := range []string{"tempmail.org", "MAILINATOR.COM", "Throwaway.Email"} {
		if !c.IsDisposableDomain(domain) {
			t.Fatalf("expected %q on the denylist", domain)
		}
	}
	if c.IsDisposableDomain("acme.com") {
		t.Fatal("acme.com must not be on the denylist")
	}
}

func TestDefault_SizeTierOrder(t *testing.T) {
	c := Default()

	if len(c.SizeTiers) != 4 {
		t.Fatalf("expected four tiers, got %d", len(c.SizeTiers))
	}
	order := []string{"enterprise", "large", "medium", "small"}
	for i, tier := range c.SizeTiers {
		if tier.Size != order[i] {
			t.Fatalf("tier %d: expected %q, got %q", i, order[i], tier.Size)
		}
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !c.IsService("Web Development") {
		t.Fatal("expected built-in defaults")
	}
}

func TestLoad_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `services:
  - "Plumbing"
budgetRanges:
  - "Under $1,000"
timeframes:
  - "ASAP"
disposableDomains:
  - "Spam.Example"
sizeTiers:
  - size: large
    keywords: ["pipes"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !c.IsService("Plumbing") || c.IsService("Web Development") {
		t.Fatal("expected file contents to replace defaults")
	}
	if !c.IsDisposableDomain("spam.example") {
		t.Fatal("denylist must match case-insensitively")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("services: {not a list"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestLoad_EmptyServices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("budgetRanges: [\"Under $5,000\"]\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a catalog without services")
	}
}
