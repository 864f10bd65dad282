package validation

import (
	"context"
	"testing"

	"leadtracker_backend/internal/catalog"
	"leadtracker_backend/internal/leads/domain"
	"leadtracker_backend/platform/logger"
)

type stubProber struct {
	active bool
	title  string
	called bool
}

func (p *stubProber) Probe(_ context.Context, _ string) (bool, string) {
	p.called = true
	return p.active, p.title
}

type stubPresence struct {
	linkedin bool
	social   bool
}

func (p *stubPresence) LinkedIn(_ context.Context, _, _ string) bool    { return p.linkedin }
func (p *stubPresence) SocialMedia(_ context.Context, _, _ string) bool { return p.social }

type stubVerifier struct {
	verified bool
	called   bool
}

func (v *stubVerifier) Verify(_ context.Context, _ string) bool {
	v.called = true
	return v.verified
}

func newTestService(prober *stubProber, presence *stubPresence, verifier *stubVerifier) *Service {
	return New(catalog.Default(), prober, presence, verifier, logger.New("test"))
}

func TestCheckEmail(t *testing.T) {
	svc := newTestService(&stubProber{}, &stubPresence{}, &stubVerifier{})

	cases := []struct {
		email string
		want  bool
	}{
		{"jane@acme.com", true},
		{"jane.doe@sub.acme.co.uk", true},
		{"", false},
		{"janeacme.com", false},
		{"jane@acme", false},
		{"jane doe@acme.com", false},
		{"jane@@acme.com", false},
		{"jane@tempmail.org", false},
		{"jane@10minutemail.com", false},
		{"jane@guerrillamail.com", false},
		{"jane@mailinator.com", false},
		{"jane@throwaway.email", false},
		{"jane@MAILINATOR.COM", false},
	}

	for _, tc := range cases {
		if got := svc.checkEmail(tc.email); got != tc.want {
			t.Fatalf("checkEmail(%q) = %v, expected %v", tc.email, got, tc.want)
		}
	}
}

func TestHasCompanyKeyword(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Acme Inc", true},
		{"ACME SOLUTIONS", true},
		{"Widget Group", true},
		{"Cobalt Systems", true},
		{"Coffee", true}, // substring match on "co"
		{"Jane Freelance", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := hasCompanyKeyword(tc.name); got != tc.want {
			t.Fatalf("hasCompanyKeyword(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestEstimateCompanySize(t *testing.T) {
	svc := newTestService(&stubProber{}, &stubPresence{}, &stubVerifier{})

	cases := []struct {
		name string
		want domain.CompanySize
	}{
		{"Microsoft Azure Team", domain.CompanySizeEnterprise},
		{"Google LLC", domain.CompanySizeEnterprise}, // enterprise tier checked before medium
		{"Contoso Corporation", domain.CompanySizeLarge},
		{"Northwind International", domain.CompanySizeLarge},
		{"Acme Solutions Inc", domain.CompanySizeMedium},
		{"Bright Services", domain.CompanySizeMedium},
		{"Pixel Studio", domain.CompanySizeSmall},
		{"Fresh Consulting", domain.CompanySizeSmall},
		{"Bakery", domain.CompanySizeSmall}, // no keyword defaults to small
		{"", domain.CompanySizeUnknown},
		{"   ", domain.CompanySizeUnknown},
	}

	for _, tc := range cases {
		if got := svc.estimateCompanySize(tc.name); got != tc.want {
			t.Fatalf("estimateCompanySize(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestValidate_AllSignalsPositive(t *testing.T) {
	prober := &stubProber{active: true, title: "Acme | Custom Software"}
	presence := &stubPresence{linkedin: true, social: true}
	verifier := &stubVerifier{verified: true}
	svc := newTestService(prober, presence, verifier)

	sub := domain.LeadSubmission{
		FullName:    "Jane Doe",
		CompanyName: "Acme Solutions Inc",
		Email:       "jane@acme.com",
		Website:     "https://acme.com",
	}

	report := svc.Validate(context.Background(), sub)

	if !report.EmailVerified {
		t.Fatal("expected email verified")
	}
	if !report.CompanyVerified {
		t.Fatal("expected company verified")
	}
	if !report.WebsiteActive {
		t.Fatal("expected website active")
	}
	if !report.LinkedInFound || !report.SocialMediaFound {
		t.Fatalf("expected presence signals true, got linkedin=%v social=%v", report.LinkedInFound, report.SocialMediaFound)
	}
	if report.CompanySize != domain.CompanySizeMedium {
		t.Fatalf("expected medium company size, got %q", report.CompanySize)
	}
	if report.Industry != "Acme | Custom Software" {
		t.Fatalf("expected industry from page title, got %q", report.Industry)
	}
}

func TestValidate_MissingWebsiteStaysInactive(t *testing.T) {
	prober := &stubProber{active: true, title: "should not be used"}
	svc := newTestService(prober, &stubPresence{}, &stubVerifier{})

	report := svc.Validate(context.Background(), domain.LeadSubmission{
		FullName:    "Jane Doe",
		CompanyName: "Acme Solutions Inc",
		Email:       "jane@acme.com",
	})

	if report.WebsiteActive {
		t.Fatal("expected website inactive when no website given")
	}
	if prober.called {
		t.Fatal("prober must not be called without a website")
	}
	if report.Industry != "unknown" {
		t.Fatalf("expected industry unknown, got %q", report.Industry)
	}
}

func TestValidate_CompanyWithoutKeywordSkipsVerifier(t *testing.T) {
	verifier := &stubVerifier{verified: true}
	svc := newTestService(&stubProber{}, &stubPresence{}, verifier)

	report := svc.Validate(context.Background(), domain.LeadSubmission{
		FullName:    "Jane Doe",
		CompanyName: "Bakery",
		Email:       "jane@bakery.test",
	})

	if report.CompanyVerified {
		t.Fatal("expected company unverified without an entity keyword")
	}
	if verifier.called {
		t.Fatal("verifier must not be called without an entity keyword")
	}
}

func TestValidate_EmptyCompanyName(t *testing.T) {
	verifier := &stubVerifier{verified: true}
	svc := newTestService(&stubProber{}, &stubPresence{}, verifier)

	report := svc.Validate(context.Background(), domain.LeadSubmission{
		FullName: "Jane Doe",
		Email:    "jane@acme.com",
	})

	if report.CompanyVerified {
		t.Fatal("expected company unverified for empty name")
	}
	if verifier.called {
		t.Fatal("verifier must not be called for empty name")
	}
	if report.CompanySize != domain.CompanySizeUnknown {
		t.Fatalf("expected unknown size, got %q", report.CompanySize)
	}
}
