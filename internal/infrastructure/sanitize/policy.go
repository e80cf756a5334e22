package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips all markup from user submitted text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes any HTML and normalizes surrounding whitespace. The
// policy escapes entities, so unescape afterwards to keep plain text
// like "R&D" intact.
func (s *Sanitizer) Clean(input string) string {
	cleaned := s.policy.Sanitize(input)
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}
