// Package title assembles listing titles from normalized fields. The wording
// is entirely profile-driven: a segment renders only when its predicate holds,
// in the profile's fixed order, so the same fields always produce the same
// title.
package title

import (
	"strings"

	"vintedgen/internal"
	"vintedgen/internal/profile"
)

// Build renders the title for fields under the given profile. Fields with no
// value contribute nothing; an all-null Fields yields the empty string. When
// the extraction carried no type but other segments fired, the profile's
// garment label leads the title instead.
func Build(f internal.Fields, p *profile.Profile) string {
	parts := make([]string, 0, len(p.Segments))
	for _, seg := range p.Segments {
		if !seg.When(f) {
			continue
		}
		if rendered := strings.TrimSpace(seg.Render(f)); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	if len(parts) > 0 && f.Type == nil && p.Garment != "" {
		parts = append([]string{p.Garment}, parts...)
	}
	return strings.Join(parts, " ")
}
