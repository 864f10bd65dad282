// Package service contains the submission orchestrator and the dashboard
// management operations for leads.
package service

import (
	"context"
	"strings"
	"time"

	"leadtracker_backend/internal/catalog"
	"leadtracker_backend/internal/events"
	"leadtracker_backend/internal/leads/domain"
	"leadtracker_backend/internal/leads/repository"
	"leadtracker_backend/internal/leads/scoring"
	"leadtracker_backend/internal/leads/transport"
	"leadtracker_backend/platform/apperr"
	"leadtracker_backend/platform/logger"
	"leadtracker_backend/platform/phone"

	"github.com/google/uuid"
)

// Validator derives the validation report for a submission.
type Validator interface {
	Validate(ctx context.Context, sub domain.LeadSubmission) domain.ValidationReport
}

// Service orchestrates the lead pipeline: required-field check, validation,
// scoring, assembly, persistence. It also serves the dashboard read side.
type Service struct {
	repo      repository.Repository
	validator Validator
	catalog   *catalog.Catalog
	bus       events.Bus
	log       *logger.Logger
}

// New creates the leads service.
func New(repo repository.Repository, validator Validator, cat *catalog.Catalog, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		catalog:   cat,
		bus:       bus,
		log:       log,
	}
}

// Submit processes a raw form submission end to end and returns the
// persisted lead. A missing required field fails before validation or
// scoring run, so no record is written. Exactly one record is persisted
// per successful call.
func (s *Service) Submit(ctx context.Context, req transport.SubmitLeadRequest) (transport.LeadResponse, error) {
	sub, err := s.buildSubmission(req)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	// The scorer depends on a settled report; Validate blocks until every
	// signal is in.
	report := s.validator.Validate(ctx, sub)
	breakdown := scoring.Score(sub, report)

	lead := domain.NewLead(sub, report, breakdown, time.Now())

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		s.log.DatabaseError("create lead", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to save lead", err)
	}

	s.log.LeadScored(created.ID.String(), created.Scoring.TotalScore, string(created.Scoring.Category))

	s.bus.Publish(ctx, events.LeadCaptured{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      created.ID,
		FullName:    created.Submission.FullName,
		CompanyName: created.Submission.CompanyName,
		Email:       created.Submission.Email,
		TotalScore:  created.Scoring.TotalScore,
		Category:    string(created.Scoring.Category),
	})

	return transport.ToLeadResponse(created), nil
}

// buildSubmission checks required fields and normalizes the optional ones.
func (s *Service) buildSubmission(req transport.SubmitLeadRequest) (domain.LeadSubmission, error) {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", req.FullName},
		{"companyName", req.CompanyName},
		{"email", req.Email},
		{"serviceInterest", req.ServiceInterest},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return domain.LeadSubmission{}, apperr.Validation("missing required field: " + field.name)
		}
	}

	if !s.catalog.IsService(req.ServiceInterest) {
		return domain.LeadSubmission{}, apperr.Validation("unknown service interest: " + req.ServiceInterest)
	}

	return domain.LeadSubmission{
		FullName:        strings.TrimSpace(req.FullName),
		CompanyName:     strings.TrimSpace(req.CompanyName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           phone.NormalizeE164(req.Phone),
		Website:         strings.TrimSpace(req.Website),
		Location:        strings.TrimSpace(req.Location),
		AdditionalInfo:  strings.TrimSpace(req.AdditionalInfo),
		ServiceInterest: req.ServiceInterest,
		BudgetRange:     strings.TrimSpace(req.BudgetRange),
		Timeframe:       strings.TrimSpace(req.Timeframe),
	}, nil
}

// List retrieves all leads, most recent first.
func (s *Service) List(ctx context.Context) (transport.LeadListResponse, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	items := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, transport.ToLeadResponse(lead))
	}

	return transport.LeadListResponse{Items: items, Total: len(items)}, nil
}

// GetByID retrieves a single lead.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return transport.ToLeadResponse(lead), nil
}

// Update applies a dashboard-side partial edit. Scores are never recomputed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	params := repository.UpdateParams{
		ID:             id,
		Status:         req.Status,
		Location:       req.Location,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}

	lead, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.log.Info("lead updated", "id", lead.ID, "status", lead.Status)
	return transport.ToLeadResponse(lead), nil
}

// Delete removes a lead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("lead deleted", "id", id)
	return nil
}

// FormOptions returns the fixed option lists the widget renders.
func (s *Service) FormOptions() transport.FormOptionsResponse {
	return transport.FormOptionsResponse{
		Services:     s.catalog.Services,
		BudgetRanges: s.catalog.BudgetRanges,
		Timeframes:   s.catalog.Timeframes,
	}
}
