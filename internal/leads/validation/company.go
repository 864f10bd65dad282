package validation

import (
	"strings"

	"leadtracker_backend/internal/leads/domain"
)

// companyKeywords are the organizational-entity markers used by the
// company-name heuristic. Matching is a case-insensitive substring check.
var companyKeywords = []string{
	"inc", "corp", "llc", "ltd", "company", "co", "group",
	"solutions", "services", "technologies", "systems",
}

// hasCompanyKeyword reports whether the name contains any entity keyword.
func hasCompanyKeyword(companyName string) bool {
	lower := strings.ToLower(companyName)
	for _, keyword := range companyKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// estimateCompanySize matches the company name against the ordered keyword
// tiers; the first tier with a matching keyword wins. No match defaults to
// small, a missing name to unknown.
func (s *Service) estimateCompanySize(companyName string) domain.CompanySize {
	if strings.TrimSpace(companyName) == "" {
		return domain.CompanySizeUnknown
	}

	lower := strings.ToLower(companyName)
	for _, tier := range s.catalog.SizeTiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(lower, keyword) {
				return domain.CompanySize(tier.Size)
			}
		}
	}

	return domain.CompanySizeSmall
}
