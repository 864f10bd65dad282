// Package catalog holds the fixed form option lists and the heuristic word
// lists used by lead validation. The catalog is loaded once at startup from
// a YAML file; built-in defaults are used when no file is present so the
// service runs without configuration.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SizeTier is one ordered company-size keyword tier.
type SizeTier struct {
	Size     string   `yaml:"size"`
	Keywords []string `yaml:"keywords"`
}

// Catalog is the full set of form options and validation word lists.
type Catalog struct {
	Services          []string   `yaml:"services"`
	BudgetRanges      []string   `yaml:"budgetRanges"`
	Timeframes        []string   `yaml:"timeframes"`
	DisposableDomains []string   `yaml:"disposableDomains"`
	SizeTiers         []SizeTier `yaml:"sizeTiers"`

	serviceSet    map[string]struct{}
	budgetSet     map[string]struct{}
	timeframeSet  map[string]struct{}
	disposableSet map[string]struct{}
}

// Default returns the built-in catalog matching the widget's option lists.
func Default() *Catalog {
	c := &Catalog{
		Services: []string{
			"Web Development",
			"Mobile App Development",
			"Digital Marketing",
			"SEO Services",
			"Content Creation",
			"E-commerce Solutions",
			"Consulting",
			"Other",
		},
		BudgetRanges: []string{
			"Under $5,000",
			"$5,000 - $15,000",
			"$15,000 - $50,000",
			"$50,000 - $100,000",
			"Over $100,000",
		},
		Timeframes: []string{
			"ASAP",
			"1-3 months",
			"3-6 months",
			"6-12 months",
			"1+ years",
		},
		DisposableDomains: []string{
			"tempmail.org",
			"10minutemail.com",
			"guerrillamail.com",
			"mailinator.com",
			"throwaway.email",
		},
		SizeTiers: []SizeTier{
			{Size: "enterprise", Keywords: []string{"microsoft", "google", "amazon", "apple", "facebook"}},
			{Size: "large", Keywords: []string{"corp", "corporation", "group", "international"}},
			{Size: "medium", Keywords: []string{"inc", "llc", "solutions", "services"}},
			{Size: "small", Keywords: []string{"consulting", "studio", "agency"}},
		},
	}
	c.index()
	return c
}

// Load reads the catalog from a YAML file. A missing file falls back to the
// built-in defaults; a malformed file is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Services) == 0 {
		return nil, fmt.Errorf("catalog %s defines no services", path)
	}

	c.index()
	return &c, nil
}

func (c *Catalog) index() {
	c.serviceSet = toSet(c.Services, false)
	c.budgetSet = toSet(c.BudgetRanges, false)
	c.timeframeSet = toSet(c.Timeframes, false)
	c.disposableSet = toSet(c.DisposableDomains, true)
}

func toSet(values []string, lower bool) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if lower {
			v = strings.ToLower(v)
		}
		set[v] = struct{}{}
	}
	return set
}

// IsService reports whether v is a recognized service interest.
func (c *Catalog) IsService(v string) bool {
	_, ok := c.serviceSet[v]
	return ok
}

// IsBudgetRange reports whether v is a recognized budget band.
func (c *Catalog) IsBudgetRange(v string) bool {
	_, ok := c.budgetSet[v]
	return ok
}

// IsTimeframe reports whether v is a recognized timeframe band.
func (c *Catalog) IsTimeframe(v string) bool {
	_, ok := c.timeframeSet[v]
	return ok
}

// IsDisposableDomain reports whether the email domain is on the denylist.
// Matching is exact and case-insensitive.
func (c *Catalog) IsDisposableDomain(domain string) bool {
	_, ok := c.disposableSet[strings.ToLower(domain)]
	return ok
}
