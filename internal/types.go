package internal

// RawExtraction is the untyped mapping recovered from the AI response text.
// Unknown keys are preserved so callers can surface extra model output.
type RawExtraction map[string]any

type SKUStatus string

const (
	SKUOK      SKUStatus = "ok"
	SKUMissing SKUStatus = "missing"
	SKUInvalid SKUStatus = "invalid"
)

type RiseType string

const (
	RiseUltraLow RiseType = "ultra_low"
	RiseLow      RiseType = "low"
	RiseMid      RiseType = "mid"
	RiseHigh     RiseType = "high"
)

// Fields is the normalized field set for one listing. A nil pointer is the
// explicit-null state: no confident value was supplied by either the AI
// extraction or a UI override, and nothing downstream may invent one.
type Fields struct {
	Type        *string
	Brand       *string
	Model       *string
	SizeFR      *string
	SizeUS      *string
	Size        *string
	Length      *string
	Fit         *string
	RiseType    *RiseType
	RiseCm      *float64
	CottonPct   *float64
	ElastanePct *float64
	WoolPct     *float64
	Material    *string
	Neckline    *string
	Pattern     *string
	Gender      *string
	Color       *string
	SKU         *string
	SKUStatus   *SKUStatus
	Description *string
	Defects     *string
}

// Composition carries the merged fiber percentages before the disclosure
// thresholds apply. Description text discloses what the label says even when
// the title stays silent.
type Composition struct {
	CottonPct   *float64
	ElastanePct *float64
}

// LowRise reports whether the rise qualifies for the "taille basse" title
// segment (low or ultra_low only).
func (f Fields) LowRise() bool {
	return f.RiseType != nil && (*f.RiseType == RiseLow || *f.RiseType == RiseUltraLow)
}

// AsRaw projects the fields back onto the canonical raw key set. Explicit-null
// fields are emitted as JSON null so that re-normalizing the result is a no-op.
func (f Fields) AsRaw() RawExtraction {
	raw := RawExtraction{
		"type":         anyOrNil(f.Type),
		"brand":        anyOrNil(f.Brand),
		"model":        anyOrNil(f.Model),
		"size_fr":      anyOrNil(f.SizeFR),
		"size_us":      anyOrNil(f.SizeUS),
		"size":         anyOrNil(f.Size),
		"length":       anyOrNil(f.Length),
		"fit":          anyOrNil(f.Fit),
		"rise_cm":      anyOrNil(f.RiseCm),
		"cotton_pct":   anyOrNil(f.CottonPct),
		"elastane_pct": anyOrNil(f.ElastanePct),
		"wool_pct":     anyOrNil(f.WoolPct),
		"material":     anyOrNil(f.Material),
		"neckline":     anyOrNil(f.Neckline),
		"pattern":      anyOrNil(f.Pattern),
		"gender":       anyOrNil(f.Gender),
		"color":        anyOrNil(f.Color),
		"sku":          anyOrNil(f.SKU),
		"description":  anyOrNil(f.Description),
		"defects":      anyOrNil(f.Defects),
	}
	if f.RiseType != nil {
		raw["rise_type"] = string(*f.RiseType)
	} else {
		raw["rise_type"] = nil
	}
	if f.SKUStatus != nil {
		raw["sku_status"] = string(*f.SKUStatus)
	} else {
		raw["sku_status"] = nil
	}
	return raw
}

func anyOrNil[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
