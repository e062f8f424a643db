// Package slug derives stable, URL-safe identifiers from display names.
//
// Slugs back the data-testid selectors that browser tests and htmx
// fragments rely on, so derivation must be deterministic: the same display
// name always yields the same slug.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.English)

// Make converts a display name into a lowercase hyphen-separated slug.
//
// Characters outside [a-z0-9], spaces, underscores, and hyphens are
// dropped; runs of separators collapse into a single hyphen. An input with
// no usable characters yields the empty slug.
func Make(name string) string {
	name = lower.String(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '-', r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}
