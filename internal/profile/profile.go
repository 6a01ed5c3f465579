// Package profile holds the per-category specifications that drive
// normalization and title assembly. Profiles are registered once at process
// start and are immutable afterwards; adding a clothing category means
// registering one new Profile and touching nothing else.
package profile

import (
	"errors"
	"fmt"

	"vintedgen/internal"
)

var (
	ErrUnknownProfile   = errors.New("unknown profile")
	ErrDuplicateProfile = errors.New("duplicate profile")
)

// FitSynonym binds one folded fit token to its canonical display form.
type FitSynonym struct {
	Token   string
	Display string
}

// Segment is one ordered, conditionally included fragment of the title.
type Segment struct {
	Name   string
	When   func(f internal.Fields) bool
	Render func(f internal.Fields) string
}

// Profile describes how one clothing category canonicalizes its fields and
// orders its title segments.
type Profile struct {
	// Key is the unique registry key, e.g. "jean_levis".
	Key string
	// Garment is the leading title label ("Jean", "Pull"). The title builder
	// puts it in front when the extraction carries no explicit type field and
	// the title is otherwise non-empty.
	Garment string
	// FitSynonyms maps folded fit tokens (lowercase, accents stripped) to
	// the canonical display form, in matching priority order. Substring
	// matching applies, so "slim fit" hits the "slim" entry. Unrecognized
	// fits degrade to explicit-null.
	FitSynonyms []FitSynonym
	// SizeFRToUS, when non-nil, is an explicit reversible lookup used to
	// fill a missing size from its counterpart. Nil means no cross-derivation
	// ever happens (values are never interpolated).
	SizeFRToUS map[string]string
	// CottonMinPct and ElastaneMinPct are the disclosure thresholds below
	// which a composition percentage is not a differentiating attribute and
	// becomes explicit-null. Defaults are product-approved; change only with
	// sign-off.
	CottonMinPct   float64
	ElastaneMinPct float64
	// Segments is the fixed title order. Leg length is deliberately absent
	// from every built-in segment list; it belongs to the description only.
	Segments []Segment
}

// USFromFR resolves a missing US size through the explicit table, if any.
func (p *Profile) USFromFR(fr string) (string, bool) {
	if p.SizeFRToUS == nil {
		return "", false
	}
	us, ok := p.SizeFRToUS[fr]
	return us, ok
}

// FRFromUS is the reverse lookup of USFromFR.
func (p *Profile) FRFromUS(us string) (string, bool) {
	if p.SizeFRToUS == nil {
		return "", false
	}
	for fr, candidate := range p.SizeFRToUS {
		if candidate == us {
			return fr, true
		}
	}
	return "", false
}

// Registry is the process-wide profile set. Write-once during initialization,
// read-only afterwards; concurrent readers need no locking.
type Registry struct {
	profiles map[string]*Profile
	keys     []string
}

func NewRegistry() *Registry {
	return &Registry{profiles: map[string]*Profile{}}
}

func (r *Registry) Register(p *Profile) error {
	if p == nil || p.Key == "" {
		return fmt.Errorf("profile must carry a non-empty key")
	}
	if _, exists := r.profiles[p.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProfile, p.Key)
	}
	r.profiles[p.Key] = p
	r.keys = append(r.keys, p.Key)
	return nil
}

func (r *Registry) Get(key string) (*Profile, error) {
	p, ok := r.profiles[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, key)
	}
	return p, nil
}

// Keys returns the registration order, for UI population.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}
