// Package normalize merges the raw AI extraction with UI overrides into the
// canonical field set. Merge precedence per field, highest wins: non-empty UI
// override, then a validated AI value, then explicit-null. No value is ever
// synthesized: absent stays null through the whole pipeline.
package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"vintedgen/internal"
	"vintedgen/internal/profile"
	"vintedgen/internal/util"
)

// aliases maps the FR/EN key variants the models emit onto canonical keys.
var aliases = map[string]string{
	"titre":             "title",
	"nom":               "title",
	"name":              "title",
	"marque":            "brand",
	"modele":            "model",
	"coupe":             "fit",
	"couleur":           "color",
	"genre":             "gender",
	"sexe":              "gender",
	"taille":            "size",
	"taille_fr":         "size_fr",
	"taille_us":         "size_us",
	"longueur":          "length",
	"cotton_percent":    "cotton_pct",
	"coton_pct":         "cotton_pct",
	"elasthane_percent": "elastane_pct",
	"elasthane_pct":     "elastane_pct",
	"stretch_pct":       "elastane_pct",
	"wool_percent":      "wool_pct",
	"laine_pct":         "wool_pct",
	"matiere":           "material",
	"col":               "neckline",
	"motif":             "pattern",
	"defaut":            "defects",
	"defauts":           "defects",
}

// skuPlaceholders are model outputs that mean "no SKU", not a SKU.
var skuPlaceholders = map[string]struct{}{
	"null": {}, "none": {}, "n/a": {}, "na": {}, "nc": {},
	"unknown": {}, "missing": {}, "?": {},
}

var (
	reSizeUS = regexp.MustCompile(`W(\d+)`)
	reLength = regexp.MustCompile(`L(\d+)`)
	reDigits = regexp.MustCompile(`^\d+$`)
	reSizeFR = regexp.MustCompile(`(?i)^FR\s*(\d+)$`)
)

// Normalize merges raw AI data with overrides under the given profile.
func Normalize(raw internal.RawExtraction, overrides map[string]any, p *profile.Profile) internal.Fields {
	src := newSource(raw, overrides)
	var f internal.Fields

	f.Type = src.str("type")
	f.Brand = src.str("brand")
	f.Model = src.str("model")
	f.Gender = canonGender(src.str("gender"))
	f.Color = src.str("color")
	f.Material = src.str("material")
	f.Neckline = src.str("neckline")
	f.Pattern = src.str("pattern")
	f.Size = src.str("size")
	f.Description = src.str("description")
	f.Defects = src.str("defects")

	f.Fit = canonFit(src.str("fit"), p)

	f.SizeFR = canonSizeFR(src.str("size_fr"))
	us, lengthFromUS := canonSizeUS(src.str("size_us"))
	f.SizeUS = us
	f.Length = canonLength(src.str("length"))
	if f.Length == nil {
		f.Length = lengthFromUS
	}
	// Cross-derivation happens only through the profile's explicit table,
	// never by interpolation.
	if f.SizeFR == nil && f.SizeUS != nil {
		if fr, ok := p.FRFromUS(*f.SizeUS); ok {
			f.SizeFR = util.StringPtr(fr)
		}
	}
	if f.SizeUS == nil && f.SizeFR != nil {
		if derived, ok := p.USFromFR(*f.SizeFR); ok {
			f.SizeUS = util.StringPtr(derived)
		}
	}

	f.CottonPct = thresholded(src.pct("cotton_pct"), p.CottonMinPct)
	f.ElastanePct = thresholded(src.pct("elastane_pct"), p.ElastaneMinPct)
	f.WoolPct = src.pct("wool_pct")

	f.RiseCm = src.num("rise_cm")
	f.RiseType = canonRise(src.str("rise_type"), f.RiseCm)

	f.SKU, f.SKUStatus = canonSKU(src.rawValue("sku"), src.str("sku"), src.str("sku_status"))

	return f
}

// RawComposition merges the fiber percentages without applying the disclosure
// thresholds. The description builder discloses sub-threshold values that the
// title suppresses.
func RawComposition(raw internal.RawExtraction, overrides map[string]any) internal.Composition {
	src := newSource(raw, overrides)
	return internal.Composition{
		CottonPct:   src.pct("cotton_pct"),
		ElastanePct: src.pct("elastane_pct"),
	}
}

// source resolves aliases on both inputs and applies the merge precedence.
type source struct {
	raw       map[string]any
	overrides map[string]any
}

func newSource(raw internal.RawExtraction, overrides map[string]any) source {
	return source{raw: canonicalKeys(map[string]any(raw)), overrides: canonicalKeys(overrides)}
}

func canonicalKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := strings.ToLower(strings.TrimSpace(k))
		if canonical, ok := aliases[key]; ok {
			key = canonical
		}
		out[key] = v
	}
	return out
}

// rawValue returns the winning raw value for a key: a non-empty override
// first, the AI value otherwise.
func (s source) rawValue(key string) any {
	if v, ok := s.overrides[key]; ok && hasValue(v) {
		return v
	}
	return s.raw[key]
}

func (s source) str(key string) *string {
	return toStringValue(s.rawValue(key))
}

func (s source) pct(key string) *float64 {
	v := util.ParsePercent(s.rawValue(key))
	if v == nil || *v < 0 || *v > 100 {
		return nil
	}
	return v
}

func (s source) num(key string) *float64 {
	return util.ParsePercent(s.rawValue(key))
}

func hasValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	default:
		return true
	}
}

func toStringValue(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s := util.NormalizeSpace(t)
		if s == "" {
			return nil
		}
		return util.StringPtr(s)
	case float64:
		return util.StringPtr(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return util.StringPtr(strconv.Itoa(t))
	case json.Number:
		return util.StringPtr(t.String())
	default:
		return nil
	}
}

func thresholded(v *float64, min float64) *float64 {
	if v == nil || *v < min {
		// Below the disclosure threshold the percentage is not a
		// differentiating attribute; it survives only in the description.
		return nil
	}
	return v
}

// canonFit collapses fit labels through the profile synonym table. The token
// scan is ordered, so mixed labels resolve the same way every run. A label
// matching no synonym is explicit-null, never passed through as a guess.
func canonFit(v *string, p *profile.Profile) *string {
	if v == nil {
		return nil
	}
	folded := util.FoldKey(*v)
	for _, syn := range p.FitSynonyms {
		if strings.Contains(folded, syn.Token) {
			return util.StringPtr(syn.Display)
		}
	}
	return nil
}

func canonGender(v *string) *string {
	if v == nil {
		return nil
	}
	folded := util.FoldKey(*v)
	switch {
	case strings.HasPrefix(folded, "f"):
		return util.StringPtr("femme")
	case strings.HasPrefix(folded, "h"):
		return util.StringPtr("homme")
	}
	return v
}

func canonSizeFR(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if m := reSizeFR.FindStringSubmatch(s); m != nil {
		return util.StringPtr(m[1])
	}
	return util.StringPtr(s)
}

// canonSizeUS normalizes waist labels: "W28 L30", "w28l30" and bare "28" all
// yield "W28"; an embedded length token is returned separately so it can fill
// a missing length field.
func canonSizeUS(v *string) (*string, *string) {
	if v == nil {
		return nil, nil
	}
	compact := strings.ToUpper(strings.ReplaceAll(*v, " ", ""))
	var us, length *string
	if m := reSizeUS.FindStringSubmatch(compact); m != nil {
		us = util.StringPtr("W" + m[1])
	} else if reDigits.MatchString(compact) {
		us = util.StringPtr("W" + compact)
	}
	if m := reLength.FindStringSubmatch(compact); m != nil {
		length = util.StringPtr("L" + m[1])
	}
	return us, length
}

func canonLength(v *string) *string {
	if v == nil {
		return nil
	}
	compact := strings.ToUpper(strings.ReplaceAll(*v, " ", ""))
	if m := reLength.FindStringSubmatch(compact); m != nil {
		return util.StringPtr("L" + m[1])
	}
	if reDigits.MatchString(compact) {
		return util.StringPtr("L" + compact)
	}
	return nil
}

// canonRise normalizes a rise label, or classifies from the front-rise
// measurement when no label was given: <20cm ultra_low, <23 low, <26 mid,
// else high.
func canonRise(label *string, riseCm *float64) *internal.RiseType {
	if label != nil {
		folded := util.FoldKey(*label)
		switch {
		case strings.Contains(folded, "ultra"):
			return risePtr(internal.RiseUltraLow)
		case strings.Contains(folded, "basse"), strings.Contains(folded, "low"):
			return risePtr(internal.RiseLow)
		case strings.Contains(folded, "haute"), strings.Contains(folded, "high"):
			return risePtr(internal.RiseHigh)
		case strings.Contains(folded, "moy"), strings.Contains(folded, "mid"):
			return risePtr(internal.RiseMid)
		}
	}
	if riseCm == nil {
		return nil
	}
	switch v := *riseCm; {
	case v < 20:
		return risePtr(internal.RiseUltraLow)
	case v < 23:
		return risePtr(internal.RiseLow)
	case v < 26:
		return risePtr(internal.RiseMid)
	default:
		return risePtr(internal.RiseHigh)
	}
}

func risePtr(r internal.RiseType) *internal.RiseType { return &r }

// canonSKU filters placeholder tokens and reports the extraction status:
// ok when a usable SKU survives, invalid when something was supplied but
// rejected, missing when nothing was supplied at all. An invalid verdict
// carried in the incoming sku_status survives re-normalization even though
// the rejected value itself is gone.
func canonSKU(rawValue any, v, prior *string) (*string, *internal.SKUStatus) {
	if v == nil {
		if hasValue(rawValue) {
			return nil, skuPtr(internal.SKUInvalid)
		}
		if prior != nil && internal.SKUStatus(strings.ToLower(*prior)) == internal.SKUInvalid {
			return nil, skuPtr(internal.SKUInvalid)
		}
		return nil, skuPtr(internal.SKUMissing)
	}
	if _, placeholder := skuPlaceholders[util.FoldKey(*v)]; placeholder {
		return nil, skuPtr(internal.SKUInvalid)
	}
	return util.StringPtr(strings.ReplaceAll(*v, " ", "")), skuPtr(internal.SKUOK)
}

func skuPtr(s internal.SKUStatus) *internal.SKUStatus { return &s }
