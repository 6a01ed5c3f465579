// Package pricing computes the recommended asking price for profiles with a
// known resale matrix. Profiles without one get no recommendation rather than
// a guess.
package pricing

import (
	"fmt"
	"regexp"
	"strings"

	"vintedgen/internal"
	"vintedgen/internal/profile"
)

// Average sourcing cost per gender for Levi's denim.
const (
	levisPurchaseHomme = 9.0
	levisPurchaseFemme = 7.0
)

// premiumLevisMarkers flag the iconic models and vintage lines that resell
// above the standard range.
var premiumLevisMarkers = []string{
	"501", "505", "517", "550", "560", "569",
	"vintage", "big e", "orange tab", "red tab",
	"made in usa", "selvedge", "lvc", "levis vintage clothing",
}

// defectTerms mark wear worth discounting. Terms like "aucun défaut" are
// cleared first so a negated mention never counts as a defect.
var defectTerms = []string{
	"tâche", "tache", "usure", "déchirure", "trou", "accroc",
	"décoloration", "jaunissement", "peluche", "bouloché",
	"défaut", "marque", "trace", "usé", "abîmé", "endommagé",
	"stain", "worn", "damaged", "hole", "tear",
}

var noDefectTerms = []string{"aucun", "sans défaut", "parfait état", "neuf", "comme neuf"}

var modelNumberPattern = regexp.MustCompile(`\b(\d{3})\b`)

// Recommendation is a suggested price with the inputs that produced it.
type Recommendation struct {
	Price     float64
	Rationale string
}

// Recommend prices the listing under the given profile. Profiles with no
// resale matrix return nil.
func Recommend(f internal.Fields, p *profile.Profile) *Recommendation {
	if p.Key != "jean_levis" {
		return nil
	}
	return jeanLevis(f)
}

func jeanLevis(f internal.Fields) *Recommendation {
	gender := ""
	if f.Gender != nil {
		gender = strings.ToLower(strings.TrimSpace(*f.Gender))
	}
	base := levisPurchaseFemme
	genderLabel := "non précisé"
	switch gender {
	case "homme":
		base = levisPurchaseHomme
		genderLabel = "homme"
	case "femme":
		genderLabel = "femme"
	}

	model := ""
	if f.Model != nil {
		model = *f.Model
	}
	premium := isPremiumModel(model)
	defective := hasDefects(f.Defects)

	var multiplier float64
	var quality string
	switch {
	case premium && !defective:
		multiplier, quality = 4.0, "premium sans défaut"
	case premium && defective:
		multiplier, quality = 3.0, "premium avec défaut"
	case !premium && !defective:
		multiplier, quality = 3.5, "non premium sans défaut"
	default:
		multiplier, quality = 2.5, "non premium avec défaut"
	}

	modelLabel := model
	if modelLabel == "" {
		modelLabel = "NC"
	}
	return &Recommendation{
		Price: base * multiplier,
		Rationale: fmt.Sprintf("Genre: %s (base %g€) | Qualité: %s (x%g) | Modèle: %s",
			genderLabel, base, quality, multiplier, modelLabel),
	}
}

func isPremiumModel(model string) bool {
	if model == "" {
		return false
	}
	low := strings.ToLower(strings.TrimSpace(model))
	for _, marker := range premiumLevisMarkers {
		if strings.Contains(low, marker) {
			return true
		}
	}
	if m := modelNumberPattern.FindStringSubmatch(low); m != nil {
		for _, marker := range premiumLevisMarkers {
			if m[1] == marker {
				return true
			}
		}
	}
	return false
}

func hasDefects(defects *string) bool {
	if defects == nil {
		return false
	}
	low := strings.ToLower(strings.TrimSpace(*defects))
	if low == "" {
		return false
	}
	for _, term := range noDefectTerms {
		if strings.Contains(low, term) {
			return false
		}
	}
	for _, term := range defectTerms {
		if strings.Contains(low, term) {
			return true
		}
	}
	return false
}
