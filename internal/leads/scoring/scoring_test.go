package scoring

import (
	"testing"

	"leadtracker_backend/internal/leads/domain"
)

func allSignalsTrue() domain.ValidationReport {
	return domain.ValidationReport{
		EmailVerified:    true,
		CompanyVerified:  true,
		WebsiteActive:    true,
		LinkedInFound:    true,
		SocialMediaFound: true,
		CompanySize:      domain.CompanySizeMedium,
	}
}

func TestScore_ValidationSignalsAllTrue(t *testing.T) {
	breakdown := Score(domain.LeadSubmission{}, allSignalsTrue())
	if breakdown.ValidationScore != 35 {
		t.Fatalf("expected validation score 35, got %d", breakdown.ValidationScore)
	}
}

func TestScore_ValidationSignalsAllFalse(t *testing.T) {
	report := domain.ValidationReport{CompanySize: domain.CompanySizeUnknown}
	breakdown := Score(domain.LeadSubmission{}, report)
	if breakdown.ValidationScore != 0 {
		t.Fatalf("expected validation score 0, got %d", breakdown.ValidationScore)
	}
}

func TestScore_CompanySizeTable(t *testing.T) {
	cases := []struct {
		size domain.CompanySize
		want int
	}{
		{domain.CompanySizeEnterprise, 20},
		{domain.CompanySizeLarge, 15},
		{domain.CompanySizeMedium, 10},
		{domain.CompanySizeSmall, 5},
		{domain.CompanySizeUnknown, 2},
		{domain.CompanySize("bogus"), 0},
	}

	for _, tc := range cases {
		breakdown := Score(domain.LeadSubmission{}, domain.ValidationReport{CompanySize: tc.size})
		if breakdown.CompanySize != tc.want {
			t.Fatalf("size %q: expected %d, got %d", tc.size, tc.want, breakdown.CompanySize)
		}
	}
}

func TestScore_BudgetAndUrgencyTables(t *testing.T) {
	cases := []struct {
		budget      string
		timeframe   string
		wantBudget  int
		wantUrgency int
	}{
		{"Over $100,000", "ASAP", 25, 20},
		{"$50,000 - $100,000", "1-3 months", 20, 15},
		{"$15,000 - $50,000", "3-6 months", 15, 10},
		{"$5,000 - $15,000", "6-12 months", 10, 5},
		{"Under $5,000", "1+ years", 5, 2},
		{"", "", 0, 0},
		{"not a band", "someday", 0, 0},
	}

	for _, tc := range cases {
		sub := domain.LeadSubmission{BudgetRange: tc.budget, Timeframe: tc.timeframe}
		breakdown := Score(sub, domain.ValidationReport{CompanySize: domain.CompanySizeUnknown})
		if breakdown.BudgetScore != tc.wantBudget {
			t.Fatalf("budget %q: expected %d, got %d", tc.budget, tc.wantBudget, breakdown.BudgetScore)
		}
		if breakdown.UrgencyScore != tc.wantUrgency {
			t.Fatalf("timeframe %q: expected %d, got %d", tc.timeframe, tc.wantUrgency, breakdown.UrgencyScore)
		}
	}
}

func TestScore_TotalIsSumOfFactors(t *testing.T) {
	subs := []domain.LeadSubmission{
		{},
		{BudgetRange: "Over $100,000"},
		{BudgetRange: "Under $5,000", Timeframe: "ASAP"},
		{BudgetRange: "$15,000 - $50,000", Timeframe: "1+ years"},
	}
	reports := []domain.ValidationReport{
		{CompanySize: domain.CompanySizeUnknown},
		{CompanySize: domain.CompanySizeEnterprise, EmailVerified: true},
		allSignalsTrue(),
	}

	for _, sub := range subs {
		for _, report := range reports {
			breakdown := Score(sub, report)
			sum := breakdown.CompanySize + breakdown.BudgetScore + breakdown.UrgencyScore + breakdown.ValidationScore
			if breakdown.TotalScore != sum {
				t.Fatalf("total %d is not the factor sum %d", breakdown.TotalScore, sum)
			}
			if breakdown.TotalScore < 0 || breakdown.TotalScore > 100 {
				t.Fatalf("total %d outside [0,100]", breakdown.TotalScore)
			}
		}
	}
}

func TestCategorize_Bands(t *testing.T) {
	cases := []struct {
		score int
		want  domain.Category
	}{
		{0, domain.CategoryCold},
		{39, domain.CategoryCold},
		{40, domain.CategoryWarm},
		{69, domain.CategoryWarm},
		{70, domain.CategoryHot},
		{100, domain.CategoryHot},
	}

	for _, tc := range cases {
		if got := Categorize(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestCategorize_MonotonicNonDecreasing(t *testing.T) {
	rank := map[domain.Category]int{
		domain.CategoryCold: 0,
		domain.CategoryWarm: 1,
		domain.CategoryHot:  2,
	}

	prev := rank[Categorize(0)]
	for score := 1; score <= 100; score++ {
		current := rank[Categorize(score)]
		if current < prev {
			t.Fatalf("category rank decreased at score %d", score)
		}
		prev = current
	}
}

func TestScore_ReferenceSubmission(t *testing.T) {
	sub := domain.LeadSubmission{
		FullName:        "Jane Doe",
		CompanyName:     "Acme Solutions Inc",
		Email:           "jane@acme.com",
		ServiceInterest: "Web Development",
		BudgetRange:     "Over $100,000",
		Timeframe:       "ASAP",
	}

	breakdown := Score(sub, allSignalsTrue())

	if breakdown.CompanySize != 10 {
		t.Fatalf("expected company size score 10, got %d", breakdown.CompanySize)
	}
	if breakdown.BudgetScore != 25 {
		t.Fatalf("expected budget score 25, got %d", breakdown.BudgetScore)
	}
	if breakdown.UrgencyScore != 20 {
		t.Fatalf("expected urgency score 20, got %d", breakdown.UrgencyScore)
	}
	if breakdown.ValidationScore != 35 {
		t.Fatalf("expected validation score 35, got %d", breakdown.ValidationScore)
	}
	if breakdown.TotalScore != 90 {
		t.Fatalf("expected total score 90, got %d", breakdown.TotalScore)
	}
	if breakdown.Category != domain.CategoryHot {
		t.Fatalf("expected category hot, got %q", breakdown.Category)
	}
}
