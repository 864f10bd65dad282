// Package domain defines the lead entities: the raw submission, the derived
// validation report and scoring breakdown, and the persisted Lead.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanySize is the estimated size class of the lead's company.
type CompanySize string

const (
	CompanySizeEnterprise CompanySize = "enterprise"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeUnknown    CompanySize = "unknown"
)

// Category is the three-tier qualification label derived from the total score.
type Category string

const (
	CategoryHot  Category = "hot"
	CategoryWarm Category = "warm"
	CategoryCold Category = "cold"
)

// StatusNew is the workflow status assigned at creation. Later transitions
// are free-form dashboard tags ("contacted", "closed", ...).
const StatusNew = "new"

// createdAtDisplayLayout matches the dashboard's display formatting.
const createdAtDisplayLayout = "Jan 02, 2006"

// LeadSubmission is the raw form submission. It is immutable once created.
type LeadSubmission struct {
	FullName        string
	CompanyName     string
	Email           string
	Phone           string
	Website         string
	Location        string
	AdditionalInfo  string
	ServiceInterest string
	BudgetRange     string
	Timeframe       string
}

// ValidationReport holds the independently computed authenticity signals
// for one submission.
type ValidationReport struct {
	EmailVerified    bool        `json:"emailVerified"`
	CompanyVerified  bool        `json:"companyVerified"`
	WebsiteActive    bool        `json:"websiteActive"`
	LinkedInFound    bool        `json:"linkedinFound"`
	SocialMediaFound bool        `json:"socialMediaFound"`
	CompanySize      CompanySize `json:"companySize"`
	Industry         string      `json:"industry"`
}

// ScoringBreakdown holds the per-factor scores, their total, and the
// resulting category.
type ScoringBreakdown struct {
	CompanySize     int      `json:"companySize"`
	BudgetScore     int      `json:"budgetScore"`
	UrgencyScore    int      `json:"urgencyScore"`
	ValidationScore int      `json:"validationScore"`
	TotalScore      int      `json:"totalScore"`
	Category        Category `json:"category"`
}

// Lead is the persisted, scored prospect record.
type Lead struct {
	ID               uuid.UUID
	Submission       LeadSubmission
	CreatedAt        time.Time
	CreatedAtDisplay string
	Validation       ValidationReport
	Scoring          ScoringBreakdown
	Score            Category
	Status           string
}

// NewLead assembles a Lead from its parts. The id is assigned here, exactly
// once; the denormalized Score always equals Scoring.Category; the status
// starts at "new"; both timestamp representations come from the same instant.
func NewLead(sub LeadSubmission, report ValidationReport, breakdown ScoringBreakdown, now time.Time) Lead {
	now = now.UTC()
	return Lead{
		ID:               uuid.New(),
		Submission:       sub,
		CreatedAt:        now,
		CreatedAtDisplay: now.Format(createdAtDisplayLayout),
		Validation:       report,
		Scoring:          breakdown,
		Score:            breakdown.Category,
		Status:           StatusNew,
	}
}
