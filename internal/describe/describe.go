// Package describe produces the long-form French description for a listing.
// Profiles with a structured template get a fully generated text; the rest
// fall back to whatever description the AI supplied.
package describe

import (
	"fmt"
	"regexp"
	"strings"

	"vintedgen/internal"
	"vintedgen/internal/profile"
	"vintedgen/internal/util"
)

// builders maps a profile key to its structured template.
var builders = map[string]func(internal.Fields, internal.Composition) string{
	"jean_levis": jeanLevis,
}

// Build renders the description for fields under the given profile. When the
// profile has no template the raw AI description passes through, minus any
// footer lines the template set would have replaced.
func Build(f internal.Fields, comp internal.Composition, p *profile.Profile) string {
	if builder, ok := builders[p.Key]; ok {
		return builder(f, comp)
	}
	if f.Description != nil {
		return stripFooterLines(*f.Description)
	}
	return ""
}

var modelNumberPattern = regexp.MustCompile(`\d{3}`)

func jeanLevis(f internal.Fields, comp internal.Composition) string {
	brand := deref(f.Brand, "Levi's")
	gender := deref(f.Gender, "femme")
	model := deref(f.Model, "")
	color := deref(f.Color, "")
	sizeFR := deref(f.SizeFR, "")
	sizeUS := deref(f.SizeUS, "")
	rise := riseLabel(f.RiseType)

	intro := "Jean " + brand
	if model != "" {
		intro += " " + model
	}
	intro += " pour " + gender + "."

	durinTag := "#durin31fr" + strings.ToLower(orDefault(sizeFR, "nc"))

	paragraphs := []string{
		intro,
		sizeSentence(sizeFR, sizeUS, f.Fit, rise),
		colorSentence(color),
		compositionSentence(comp),
		"Fermeture zippée + bouton gravé Levi's.",
		stateSentence(f.Defects),
		"📏 Mesures visibles en photo.",
		"📦 Envoi rapide et soigné",
		"✨ Retrouvez tous mes articles Levi's à votre taille ici 👉 " + durinTag,
		"💡 Pensez à un lot pour profiter d'une réduction supplémentaire et économiser des frais d'envoi !",
		hashtags(f, brand, model, color, sizeFR, sizeUS, gender, rise, durinTag),
	}

	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// riseLabel renders the rise for prose. Unknown rises read as "taille
// moyenne", the safe middle ground for denim.
func riseLabel(r *internal.RiseType) string {
	if r == nil {
		return "taille moyenne"
	}
	switch *r {
	case internal.RiseLow, internal.RiseUltraLow:
		return "taille basse"
	case internal.RiseHigh:
		return "taille haute"
	default:
		return "taille moyenne"
	}
}

func sizeSentence(sizeFR, sizeUS string, fit *string, rise string) string {
	var parts []string
	switch {
	case sizeUS != "" && sizeFR != "":
		parts = append(parts, fmt.Sprintf("Taille %s US (équivalent %s FR)", sizeUS, sizeFR))
	case sizeFR != "":
		parts = append(parts, "Taille "+sizeFR+" FR")
	case sizeUS != "":
		parts = append(parts, "Taille "+sizeUS+" US")
	}
	if fit != nil {
		parts = append(parts, "coupe "+*fit)
	}
	if rise != "" {
		parts = append(parts, "à "+rise)
	}
	if len(parts) == 0 {
		return "Taille non précisée."
	}
	parts = append(parts, "pour une silhouette ajustée et confortable")
	return strings.Join(parts, ", ") + "."
}

func colorSentence(color string) string {
	if color == "" {
		return "Coloris non précisé, se référer aux photos pour les nuances."
	}
	nuance := " légèrement délavé"
	if strings.Contains(strings.ToLower(color), "lavé") {
		nuance = ""
	}
	return "Coloris " + color + nuance + ", très polyvalent et facile à assortir."
}

func compositionSentence(comp internal.Composition) string {
	var fibers []string
	if comp.CottonPct != nil {
		fibers = append(fibers, fmt.Sprintf("%d%% coton", int(*comp.CottonPct)))
	}
	if comp.ElastanePct != nil {
		fibers = append(fibers, fmt.Sprintf("%d%% élasthanne", int(*comp.ElastanePct)))
	}
	if len(fibers) == 0 {
		return "Composition non lisible (voir étiquettes en photo)."
	}
	return "Composition : " + strings.Join(fibers, " et ") + "."
}

func stateSentence(defects *string) string {
	cleaned := normalizeDefects(defects)
	if cleaned == "" {
		return "Très bon état."
	}
	return "Très bon état. Légères traces d'usage : " + cleaned + " (voir photos)."
}

// normalizeDefects trims the defect summary down to the usable clause: the
// "voir photos" tail goes away since the state sentence re-adds it.
func normalizeDefects(defects *string) string {
	if defects == nil {
		return ""
	}
	base := strings.TrimSpace(*defects)
	if base == "" {
		return ""
	}
	if idx := strings.Index(strings.ToLower(base), "voir photos"); idx >= 0 {
		base = strings.TrimSpace(base[:idx])
	}
	return strings.TrimRight(base, ". ,;(")
}

func hashtags(f internal.Fields, brand, model, color, sizeFR, sizeUS, gender, rise, durinTag string) string {
	var tokens []string
	seen := map[string]struct{}{}
	add := func(token string) {
		if token == "" || token == "#" {
			return
		}
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	brandToken := strings.ReplaceAll(strings.ToLower(brand), "'", "")
	add("#" + brandToken)
	add("#jeanlevis")
	add("#jeandenim")

	if gender != "" {
		add("#levis" + strings.ReplaceAll(strings.ToLower(gender), " ", ""))
	}

	modelLow := strings.ToLower(strings.TrimSpace(model))
	modelNumber := modelNumberPattern.FindString(modelLow)
	if modelNumber != "" {
		add("#levis" + modelNumber)
		add("#" + modelNumber)
	}
	for _, word := range strings.Fields(strings.ReplaceAll(modelLow, "/", " ")) {
		clean := strings.NewReplacer("'", "", "-", "").Replace(word)
		if clean == modelNumber || isDigits(clean) {
			continue
		}
		add("#" + clean)
	}

	if f.Fit != nil {
		add("#" + fitToken(*f.Fit) + "jean")
	}
	if color != "" {
		add("#jean" + strings.ReplaceAll(strings.ToLower(color), " ", ""))
	}
	if rise != "" {
		add("#" + strings.ReplaceAll(rise, " ", ""))
	}
	if sizeFR != "" {
		add("#fr" + strings.ToLower(sizeFR))
	}
	if sizeUS != "" {
		add("#w" + strings.ReplaceAll(strings.ToLower(sizeUS), "w", ""))
	}
	if f.Length != nil {
		add("#l" + strings.ReplaceAll(strings.ToLower(*f.Length), "l", ""))
	}
	add(durinTag)

	return strings.Join(tokens, " ")
}

func fitToken(display string) string {
	folded := util.FoldKey(display)
	switch {
	case strings.Contains(folded, "boot"), strings.Contains(folded, "evase"):
		return "bootcut"
	case strings.Contains(folded, "skinny"):
		return "skinny"
	case strings.Contains(folded, "straight"), strings.Contains(folded, "droit"):
		return "straightdroit"
	default:
		return strings.NewReplacer(" ", "", "/", "").Replace(folded)
	}
}

// stripFooterLines drops "Marque :" / "Couleur :" footer lines some models
// append to their free-text description; those attributes already live in the
// structured fields.
func stripFooterLines(description string) string {
	lines := strings.Split(description, "\n")
	kept := lines[:0]
	for _, line := range lines {
		lowered := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(lowered, "marque :") || strings.HasPrefix(lowered, "couleur :") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func deref(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
