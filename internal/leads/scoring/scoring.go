// Package scoring computes the weighted lead score and qualification
// category from a submission and its validation report. Score is a pure
// function: deterministic, no side effects, never fails. Every lookup has a
// defined fallback of 0 so unrecognized input lowers the score instead of
// erroring.
package scoring

import "leadtracker_backend/internal/leads/domain"

const (
	// validationScoreCap bounds the summed validation sub-signals. The
	// weights below already total exactly 35, so the cap only matters if a
	// weight changes without revisiting this invariant.
	validationScoreCap = 35

	hotThreshold  = 70
	warmThreshold = 40
)

// companySizeScores awards 0-20 points by estimated company size.
var companySizeScores = map[domain.CompanySize]int{
	domain.CompanySizeEnterprise: 20,
	domain.CompanySizeLarge:      15,
	domain.CompanySizeMedium:     10,
	domain.CompanySizeSmall:      5,
	domain.CompanySizeUnknown:    2,
}

// budgetScores awards 0-25 points by exact budget band label.
var budgetScores = map[string]int{
	"Over $100,000":      25,
	"$50,000 - $100,000": 20,
	"$15,000 - $50,000":  15,
	"$5,000 - $15,000":   10,
	"Under $5,000":       5,
}

// urgencyScores awards 0-20 points by exact timeframe label.
var urgencyScores = map[string]int{
	"ASAP":        20,
	"1-3 months":  15,
	"3-6 months":  10,
	"6-12 months": 5,
	"1+ years":    2,
}

// Validation sub-signal weights (0-35 total).
const (
	emailVerifiedPoints    = 10
	companyVerifiedPoints  = 8
	linkedinFoundPoints    = 7
	socialMediaFoundPoints = 5
	websiteActivePoints    = 5
)

// Score computes the per-factor scores, total, and category for a submission.
func Score(sub domain.LeadSubmission, report domain.ValidationReport) domain.ScoringBreakdown {
	breakdown := domain.ScoringBreakdown{
		CompanySize:     companySizeScores[report.CompanySize],
		BudgetScore:     budgetScores[sub.BudgetRange],
		UrgencyScore:    urgencyScores[sub.Timeframe],
		ValidationScore: scoreValidation(report),
	}

	breakdown.TotalScore = breakdown.CompanySize + breakdown.BudgetScore +
		breakdown.UrgencyScore + breakdown.ValidationScore
	breakdown.Category = Categorize(breakdown.TotalScore)

	return breakdown
}

func scoreValidation(report domain.ValidationReport) int {
	score := 0
	if report.EmailVerified {
		score += emailVerifiedPoints
	}
	if report.CompanyVerified {
		score += companyVerifiedPoints
	}
	if report.LinkedInFound {
		score += linkedinFoundPoints
	}
	if report.SocialMediaFound {
		score += socialMediaFoundPoints
	}
	if report.WebsiteActive {
		score += websiteActivePoints
	}
	if score > validationScoreCap {
		score = validationScoreCap
	}
	return score
}

// Categorize maps a total score onto the hot/warm/cold tiers. Lower bounds
// are inclusive: 70 is hot, 40 is warm.
func Categorize(totalScore int) domain.Category {
	switch {
	case totalScore >= hotThreshold:
		return domain.CategoryHot
	case totalScore >= warmThreshold:
		return domain.CategoryWarm
	default:
		return domain.CategoryCold
	}
}
