// Package slug normalizes and validates the workspace and project
// identifiers used by the Lantern hosting service. All functions are pure.
package slug

import (
	"strings"

	"github.com/lanternhq/lantern/pkg/errors"
)

// Slugify converts a name to a URL-safe slug.
//
// Lowercase letters, digits and hyphens are kept as-is, uppercase letters
// are lowercased, runs of spaces and underscores become a single hyphen,
// and every other character is dropped. Leading, trailing and repeated
// hyphens are collapsed.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ' || r == '_' || r == '-':
			b.WriteByte('-')
		}
		// All other characters are dropped
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// Validate checks that value already is a canonical slug. The field name
// ("workspace" or "project") is only used to address the error message.
// When the value deviates from its slugified form the error suggests the
// valid alternative.
func Validate(field, value string) (string, error) {
	suggestion := Slugify(value)
	if value == "" || value != suggestion {
		if suggestion == "" {
			return "", errors.Newf(errors.ErrInvalidSlug,
				"%q isn't a valid %s identifier", value, field)
		}
		return "", errors.Newf(errors.ErrInvalidSlug,
			"%q isn't a valid %s identifier; try %q instead", value, field, suggestion)
	}
	return value, nil
}
