// Package sanitize strips markup from user supplied text.
package sanitize

import (
	"html"
	"strings"

	"mimapa/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds how many layers of entity escaping are peeled off.
const maxPasses = 8

// plainText removes every element with bluemonday's strict policy. The policy
// HTML-escapes what remains, so each pass unescapes its output and the passes
// repeat until the text stops changing. Escaped markup is stripped like literal markup.
type plainText struct {
	policy *bluemonday.Policy
}

// NewPlainText creates a TextSanitizer that keeps text content only
func NewPlainText() service.TextSanitizer {
	return &plainText{policy: bluemonday.StrictPolicy()}
}

func (s *plainText) PlainText(input string) string {
	current := strings.TrimSpace(input)
	for range maxPasses {
		if current == "" {
			return ""
		}

		next := s.pass(current)
		if next == current {
			return current
		}
		current = next
	}

	// Still unwrapping escaped markup after every pass; keep nothing.
	return ""
}

func (s *plainText) pass(input string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(input)))
}
