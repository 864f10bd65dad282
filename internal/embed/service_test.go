package embed

import (
	"bytes"
	"strings"
	"testing"

	"leadtracker_backend/platform/apperr"
)

func TestBuild_Defaults(t *testing.T) {
	svc := NewService("https://leads.example.com/")

	snippet, err := svc.Build(Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	cfg := snippet.Config
	if cfg.Theme != "light" || cfg.Position != "bottom-right" {
		t.Fatalf("unexpected defaults: theme=%q position=%q", cfg.Theme, cfg.Position)
	}
	if cfg.Title != "Get Your Free Quote" || cfg.Subtitle != "Tell us about your project" {
		t.Fatalf("unexpected default copy: %q / %q", cfg.Title, cfg.Subtitle)
	}
	if cfg.PrimaryColor != "#3b82f6" {
		t.Fatalf("unexpected default color %q", cfg.PrimaryColor)
	}
	if cfg.ShowVisitorTracking == nil || !*cfg.ShowVisitorTracking {
		t.Fatal("visitor tracking must default on")
	}
	if cfg.APIEndpoint != "https://leads.example.com/api/v1/public" {
		t.Fatalf("unexpected api endpoint %q", cfg.APIEndpoint)
	}
}

func TestBuild_OverridesMergeOverDefaults(t *testing.T) {
	svc := NewService("https://leads.example.com")

	tracking := false
	snippet, err := svc.Build(Options{
		Theme:               "dark",
		Title:               "Talk to us",
		PrimaryColor:        "#FF8800",
		ShowVisitorTracking: &tracking,
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	cfg := snippet.Config
	if cfg.Theme != "dark" || cfg.Title != "Talk to us" || cfg.PrimaryColor != "#FF8800" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Position != "bottom-right" {
		t.Fatalf("untouched option must keep its default, got %q", cfg.Position)
	}
	if *cfg.ShowVisitorTracking {
		t.Fatal("tracking override not applied")
	}
}

func TestBuild_SnippetHTML(t *testing.T) {
	svc := NewService("https://leads.example.com")

	snippet, err := svc.Build(Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !strings.Contains(snippet.HTML, `src="https://leads.example.com/embed/leadtracker.js"`) {
		t.Fatalf("snippet missing script source: %s", snippet.HTML)
	}
	if !strings.Contains(snippet.HTML, "LeadTracker.init(") {
		t.Fatalf("snippet missing init call: %s", snippet.HTML)
	}
	if !strings.Contains(snippet.HTML, `"theme": "light"`) {
		t.Fatalf("snippet missing rendered config: %s", snippet.HTML)
	}
}

func TestBuild_RejectsBadColor(t *testing.T) {
	svc := NewService("https://leads.example.com")

	for _, color := range []string{"blue", "#fff", "3b82f6", "#3b82f67"} {
		_, err := svc.Build(Options{PrimaryColor: color})
		if apperr.GetKind(err) != apperr.KindValidation {
			t.Fatalf("color %q: expected validation error, got %v", color, err)
		}
	}
}

func TestQRCode(t *testing.T) {
	svc := NewService("https://leads.example.com")

	png, err := svc.QRCode(0)
	if err != nil {
		t.Fatalf("qr render failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("expected a PNG payload")
	}
}

func TestFormURL(t *testing.T) {
	svc := NewService("https://leads.example.com/")
	if got := svc.FormURL(); got != "https://leads.example.com/form" {
		t.Fatalf("unexpected form url %q", got)
	}
}
