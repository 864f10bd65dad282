// Package transport defines the request and response DTOs for the leads module.
package transport

import (
	"time"

	"leadtracker_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// SubmitLeadRequest is the form submission boundary. Unknown JSON fields
// are ignored; the recognized fields are exactly the submission fields.
// Email syntax is deliberately not validated here: a malformed email is a
// scoring signal (emailVerified=false), not a rejected submission.
type SubmitLeadRequest struct {
	FullName        string `json:"fullName" validate:"required,max=200"`
	CompanyName     string `json:"companyName" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,max=320"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
	Website         string `json:"website" validate:"omitempty,max=500"`
	Location        string `json:"location" validate:"omitempty,max=200"`
	AdditionalInfo  string `json:"additionalInfo" validate:"omitempty,max=2000"`
	ServiceInterest string `json:"serviceInterest" validate:"required,max=100"`
	BudgetRange     string `json:"budgetRange" validate:"omitempty,max=50"`
	Timeframe       string `json:"timeframe" validate:"omitempty,max=50"`
}

// UpdateLeadRequest carries dashboard-side partial edits. The pipeline
// never re-scores on update.
type UpdateLeadRequest struct {
	Status         *string `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Location       *string `json:"location,omitempty" validate:"omitempty,max=200"`
	AdditionalInfo *string `json:"additionalInfo,omitempty" validate:"omitempty,max=2000"`
}

// ValidationResponse mirrors domain.ValidationReport.
type ValidationResponse struct {
	EmailVerified    bool   `json:"emailVerified"`
	CompanyVerified  bool   `json:"companyVerified"`
	WebsiteActive    bool   `json:"websiteActive"`
	LinkedInFound    bool   `json:"linkedinFound"`
	SocialMediaFound bool   `json:"socialMediaFound"`
	CompanySize      string `json:"companySize"`
	Industry         string `json:"industry"`
}

// ScoringResponse mirrors domain.ScoringBreakdown.
type ScoringResponse struct {
	CompanySize     int    `json:"companySize"`
	BudgetScore     int    `json:"budgetScore"`
	UrgencyScore    int    `json:"urgencyScore"`
	ValidationScore int    `json:"validationScore"`
	TotalScore      int    `json:"totalScore"`
	Category        string `json:"category"`
}

// LeadResponse is the full lead record returned to the widget and dashboard.
type LeadResponse struct {
	ID              uuid.UUID          `json:"id"`
	FullName        string             `json:"fullName"`
	CompanyName     string             `json:"companyName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone,omitempty"`
	Website         string             `json:"website,omitempty"`
	Location        string             `json:"location,omitempty"`
	AdditionalInfo  string             `json:"additionalInfo,omitempty"`
	ServiceInterest string             `json:"serviceInterest"`
	BudgetRange     string             `json:"budgetRange,omitempty"`
	Timeframe       string             `json:"timeframe,omitempty"`
	Timestamp       time.Time          `json:"timestamp"`
	CreatedAt       string             `json:"createdAt"`
	Validation      ValidationResponse `json:"validation"`
	Scoring         ScoringResponse    `json:"scoring"`
	Score           string             `json:"score"`
	Status          string             `json:"status"`
}

// LeadListResponse wraps the dashboard lead list, most recent first.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}

// FormOptionsResponse carries the fixed option lists the widget renders.
type FormOptionsResponse struct {
	Services     []string `json:"services"`
	BudgetRanges []string `json:"budgetRanges"`
	Timeframes   []string `json:"timeframes"`
}

// ToLeadResponse maps a domain lead onto the wire format.
func ToLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:              lead.ID,
		FullName:        lead.Submission.FullName,
		CompanyName:     lead.Submission.CompanyName,
		Email:           lead.Submission.Email,
		Phone:           lead.Submission.Phone,
		Website:         lead.Submission.Website,
		Location:        lead.Submission.Location,
		AdditionalInfo:  lead.Submission.AdditionalInfo,
		ServiceInterest: lead.Submission.ServiceInterest,
		BudgetRange:     lead.Submission.BudgetRange,
		Timeframe:       lead.Submission.Timeframe,
		Timestamp:       lead.CreatedAt,
		CreatedAt:       lead.CreatedAtDisplay,
		Validation: ValidationResponse{
			EmailVerified:    lead.Validation.EmailVerified,
			CompanyVerified:  lead.Validation.CompanyVerified,
			WebsiteActive:    lead.Validation.WebsiteActive,
			LinkedInFound:    lead.Validation.LinkedInFound,
			SocialMediaFound: lead.Validation.SocialMediaFound,
			CompanySize:      string(lead.Validation.CompanySize),
			Industry:         lead.Validation.Industry,
		},
		Scoring: ScoringResponse{
			CompanySize:     lead.Scoring.CompanySize,
			BudgetScore:     lead.Scoring.BudgetScore,
			UrgencyScore:    lead.Scoring.UrgencyScore,
			ValidationScore: lead.Scoring.ValidationScore,
			TotalScore:      lead.Scoring.TotalScore,
			Category:        string(lead.Scoring.Category),
		},
		Score:  string(lead.Score),
		Status: lead.Status,
	}
}
