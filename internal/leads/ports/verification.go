// Package ports defines the collaborator interfaces the leads module
// depends on. Implementations live outside the module (internal/verify).
package ports

import "context"

// WebsiteProber checks whether a supplied website is reachable.
// Implementations must degrade to ok=false on timeout or error, never
// return an error upward. Title carries a best-effort page title for
// display and may be empty.
type WebsiteProber interface {
	Probe(ctx context.Context, url string) (ok bool, title string)
}

// PresenceLookup answers whether a person/company pair can be found on
// external platforms. Lookup failure is reported as false.
type PresenceLookup interface {
	// LinkedIn reports a LinkedIn presence for the given name and company.
	LinkedIn(ctx context.Context, fullName, companyName string) bool
	// SocialMedia reports presence on at least one platform of the
	// configured social platform set.
	SocialMedia(ctx context.Context, fullName, companyName string) bool
}

// CompanyVerifier is the external plausibility source for company names.
// Failure is reported as false.
type CompanyVerifier interface {
	Verify(ctx context.Context, companyName string) bool
}
