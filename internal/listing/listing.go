// Package listing holds the final, validated listing model. A Listing can
// only be obtained through FromFields, so every instance in circulation has
// passed structural validation.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"vintedgen/internal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports which structural rules a candidate listing broke.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid listing (%s): %v", strings.Join(e.Fields, ", "), e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Listing is the immutable generation result. Fields are unexported; the
// accessors expose values without allowing mutation.
type Listing struct {
	title       string
	description string
	fields      internal.Fields
}

// candidate mirrors Listing for the validator, which needs exported fields.
type candidate struct {
	Title       string   `validate:"required,min=1"`
	CottonPct   *float64 `validate:"omitempty,gte=0,lte=100"`
	ElastanePct *float64 `validate:"omitempty,gte=0,lte=100"`
	WoolPct     *float64 `validate:"omitempty,gte=0,lte=100"`
}

// FromFields is the only constructor. It validates the candidate and returns
// *ValidationError on failure.
func FromFields(f internal.Fields, title, description string) (*Listing, error) {
	c := candidate{
		Title:       strings.TrimSpace(title),
		CottonPct:   f.CottonPct,
		ElastanePct: f.ElastanePct,
		WoolPct:     f.WoolPct,
	}
	if err := validate.Struct(c); err != nil {
		verr := &ValidationError{Err: err}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				verr.Fields = append(verr.Fields, fe.Field())
			}
		}
		return nil, verr
	}
	return &Listing{title: c.Title, description: description, fields: f}, nil
}

func (l *Listing) Title() string           { return l.title }
func (l *Listing) Description() string     { return l.description }
func (l *Listing) Fields() internal.Fields { return l.fields }
func (l *Listing) SKU() *string            { return l.fields.SKU }

// ToMap is a pure projection of the listing for JSON output or export. Null
// fields project as nil values so downstream renderers can distinguish
// "absent" from "empty".
func (l *Listing) ToMap() map[string]any {
	out := map[string]any(l.fields.AsRaw())
	out["title"] = l.title
	out["description"] = l.description
	return out
}
