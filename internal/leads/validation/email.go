package validation

import (
	"regexp"
	"strings"
)

// emailPattern accepts the local@domain.tld shape the widget enforces
// client-side: no whitespace or extra @, and a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// checkEmail reports whether the email is syntactically valid and not on
// the disposable-domain denylist. A syntactically invalid address fails
// immediately without the denylist check.
func (s *Service) checkEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]

	return !s.catalog.IsDisposableDomain(domain)
}
