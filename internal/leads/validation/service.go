// Package validation derives the authenticity signals for a submission.
// Each sub-check degrades independently: an unreachable website or a failed
// presence lookup turns that one signal false, never the whole report.
package validation

import (
	"context"
	"strings"
	"time"

	"leadtracker_backend/internal/catalog"
	"leadtracker_backend/internal/leads/domain"
	"leadtracker_backend/internal/leads/ports"
	"leadtracker_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// defaultCheckTimeout bounds the combined external sub-checks so a stalled
// lookup cannot hold a submission indefinitely.
const defaultCheckTimeout = 10 * time.Second

// Service runs the validation rules for a lead submission.
type Service struct {
	catalog  *catalog.Catalog
	prober   ports.WebsiteProber
	presence ports.PresenceLookup
	company  ports.CompanyVerifier
	timeout  time.Duration
	log      *logger.Logger
}

// New creates a validation service with the given collaborators.
func New(cat *catalog.Catalog, prober ports.WebsiteProber, presence ports.PresenceLookup, company ports.CompanyVerifier, log *logger.Logger) *Service {
	return &Service{
		catalog:  cat,
		prober:   prober,
		presence: presence,
		company:  company,
		timeout:  defaultCheckTimeout,
		log:      log,
	}
}

// Validate produces the full validation report for a submission. The
// external sub-checks are independent and run concurrently; Validate
// returns only once every signal is settled, so callers never observe a
// partially populated report.
func (s *Service) Validate(ctx context.Context, sub domain.LeadSubmission) domain.ValidationReport {
	report := domain.ValidationReport{
		CompanySize: domain.CompanySizeUnknown,
		Industry:    "unknown",
	}

	// Local heuristics need no network round trip.
	report.EmailVerified = s.checkEmail(sub.Email)
	report.CompanySize = s.estimateCompanySize(sub.CompanyName)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if strings.TrimSpace(sub.CompanyName) == "" {
			return nil
		}
		report.CompanyVerified = hasCompanyKeyword(sub.CompanyName) && s.company.Verify(gctx, sub.CompanyName)
		return nil
	})

	g.Go(func() error {
		// Absent website stays false, not unknown.
		if strings.TrimSpace(sub.Website) == "" {
			return nil
		}
		active, title := s.prober.Probe(gctx, sub.Website)
		report.WebsiteActive = active
		if title != "" {
			report.Industry = title
		}
		return nil
	})

	g.Go(func() error {
		report.LinkedInFound = s.presence.LinkedIn(gctx, sub.FullName, sub.CompanyName)
		return nil
	})

	g.Go(func() error {
		report.SocialMediaFound = s.presence.SocialMedia(gctx, sub.FullName, sub.CompanyName)
		return nil
	})

	// Sub-checks report failure through their signal values, not errors.
	_ = g.Wait()

	return report
}
