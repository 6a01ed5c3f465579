package profile

import (
	"fmt"

	"vintedgen/internal"
)

// Product-approved disclosure thresholds. Do not change without sign-off.
const (
	DefaultCottonMinPct   = 60
	DefaultElastaneMinPct = 2
)

// Thresholds carries per-deployment overrides for the composition rules.
type Thresholds struct {
	CottonMinPct   float64
	ElastaneMinPct float64
}

func (t Thresholds) orDefaults() Thresholds {
	if t.CottonMinPct <= 0 {
		t.CottonMinPct = DefaultCottonMinPct
	}
	if t.ElastaneMinPct <= 0 {
		t.ElastaneMinPct = DefaultElastaneMinPct
	}
	return t
}

// Builtin returns a registry holding the built-in profile set with default
// thresholds.
func Builtin() *Registry {
	return BuiltinWith(Thresholds{})
}

// BuiltinWith builds the built-in registry with explicit thresholds. It is
// the single registration point: the pipeline never registers profiles after
// this returns.
func BuiltinWith(t Thresholds) *Registry {
	t = t.orDefaults()
	reg := NewRegistry()
	for _, p := range []*Profile{Base(t), JeanLevis(t), PullTommy(t), JacketCarhartt(t), PolaireOutdoor(t)} {
		if err := reg.Register(p); err != nil {
			// Built-in keys are distinct by construction.
			panic(err)
		}
	}
	return reg
}

// genericFits is shared by every built-in profile. Boot markers come first so
// that mixed labels such as "slim bootcut" resolve to the flared family, the
// same priority the display rules always had.
func genericFits() []FitSynonym {
	return []FitSynonym{
		{Token: "bootcut", Display: "Bootcut/Évasé"},
		{Token: "boot cut", Display: "Bootcut/Évasé"},
		{Token: "boot-cut", Display: "Bootcut/Évasé"},
		{Token: "flare", Display: "Bootcut/Évasé"},
		{Token: "evase", Display: "Bootcut/Évasé"},
		{Token: "curvy", Display: "Bootcut/Évasé"},
		{Token: "curve", Display: "Bootcut/Évasé"},
		{Token: "skinny", Display: "Skinny"},
		{Token: "slim", Display: "Skinny"},
		{Token: "straight", Display: "Straight/Droit"},
		{Token: "droit", Display: "Straight/Droit"},
	}
}

// Base is the generic fallback profile: pass-through fields, minimal title.
func Base(t Thresholds) *Profile {
	return &Profile{
		Key:            "base",
		FitSynonyms:    genericFits(),
		CottonMinPct:   t.CottonMinPct,
		ElastaneMinPct: t.ElastaneMinPct,
		Segments: []Segment{
			segType(),
			segString("brand", func(f internal.Fields) *string { return f.Brand }),
			segString("model", func(f internal.Fields) *string { return f.Model }),
			segString("size", func(f internal.Fields) *string { return f.Size }),
			segString("gender", func(f internal.Fields) *string { return f.Gender }),
			segString("color", func(f internal.Fields) *string { return f.Color }),
			segSKU(),
		},
	}
}

// JeanLevis is the denim profile. The segment order is fixed; changing it is
// a profile edit, never an ad hoc override. Leg length stays out of the title.
func JeanLevis(t Thresholds) *Profile {
	return &Profile{
		Key:            "jean_levis",
		Garment:        "Jean",
		FitSynonyms:    genericFits(),
		CottonMinPct:   t.CottonMinPct,
		ElastaneMinPct: t.ElastaneMinPct,
		Segments: []Segment{
			segType(),
			segString("brand", func(f internal.Fields) *string { return f.Brand }),
			segString("model", func(f internal.Fields) *string { return f.Model }),
			{
				Name:   "size_fr",
				When:   func(f internal.Fields) bool { return f.SizeFR != nil },
				Render: func(f internal.Fields) string { return "FR" + *f.SizeFR },
			},
			segString("size_us", func(f internal.Fields) *string { return f.SizeUS }),
			{
				Name:   "fit",
				When:   func(f internal.Fields) bool { return f.Fit != nil },
				Render: func(f internal.Fields) string { return "coupe " + *f.Fit },
			},
			{
				Name:   "low_rise",
				When:   func(f internal.Fields) bool { return f.LowRise() },
				Render: func(internal.Fields) string { return "taille basse" },
			},
			{
				Name:   "cotton",
				When:   func(f internal.Fields) bool { return f.CottonPct != nil },
				Render: func(f internal.Fields) string { return fmt.Sprintf("%d%% coton", int(*f.CottonPct)) },
			},
			{
				Name:   "stretch",
				When:   func(f internal.Fields) bool { return f.ElastanePct != nil },
				Render: func(internal.Fields) string { return "stretch" },
			},
			segString("gender", func(f internal.Fields) *string { return f.Gender }),
			segString("color", func(f internal.Fields) *string { return f.Color }),
			segSKU(),
		},
	}
}

// PullTommy covers knit sweaters, branded or vintage. An unbranded pull is
// titled "Vintage" in place of the brand, but only when a garment type was
// actually extracted.
func PullTommy(t Thresholds) *Profile {
	return &Profile{
		Key:            "pull_tommy",
		Garment:        "Pull",
		FitSynonyms:    genericFits(),
		CottonMinPct:   t.CottonMinPct,
		ElastaneMinPct: t.ElastaneMinPct,
		Segments: []Segment{
			segType(),
			segString("brand", func(f internal.Fields) *string { return f.Brand }),
			{
				Name:   "vintage",
				When:   func(f internal.Fields) bool { return f.Brand == nil && f.Type != nil },
				Render: func(internal.Fields) string { return "Vintage" },
			},
			segString("neckline", func(f internal.Fields) *string { return f.Neckline }),
			segString("pattern", func(f internal.Fields) *string { return f.Pattern }),
			{
				Name:   "size",
				When:   func(f internal.Fields) bool { return f.Size != nil },
				Render: func(f internal.Fields) string { return "taille " + *f.Size },
			},
			segString("gender", func(f internal.Fields) *string { return f.Gender }),
			segString("color", func(f internal.Fields) *string { return f.Color }),
			segSKU(),
		},
	}
}

// JacketCarhartt covers Carhartt workwear jackets. The shop's title
// convention spells the attributes out: modèle X taille M couleur marron.
func JacketCarhartt(t Thresholds) *Profile {
	return &Profile{
		Key:            "jacket_carhartt",
		Garment:        "Veste",
		FitSynonyms:    genericFits(),
		CottonMinPct:   t.CottonMinPct,
		ElastaneMinPct: t.ElastaneMinPct,
		Segments: []Segment{
			segType(),
			segString("brand", func(f internal.Fields) *string { return f.Brand }),
			{
				Name:   "model",
				When:   func(f internal.Fields) bool { return f.Model != nil },
				Render: func(f internal.Fields) string { return "modèle " + *f.Model },
			},
			{
				Name:   "size",
				When:   func(f internal.Fields) bool { return f.Size != nil },
				Render: func(f internal.Fields) string { return "taille " + *f.Size },
			},
			{
				Name:   "color",
				When:   func(f internal.Fields) bool { return f.Color != nil },
				Render: func(f internal.Fields) string { return "couleur " + *f.Color },
			},
			segString("gender", func(f internal.Fields) *string { return f.Gender }),
			segSKU(),
		},
	}
}

// PolaireOutdoor covers hiking and cold-weather fleeces.
func PolaireOutdoor(t Thresholds) *Profile {
	return &Profile{
		Key:            "polaire_outdoor",
		Garment:        "Polaire",
		FitSynonyms:    genericFits(),
		CottonMinPct:   t.CottonMinPct,
		ElastaneMinPct: t.ElastaneMinPct,
		Segments: []Segment{
			segType(),
			segString("brand", func(f internal.Fields) *string { return f.Brand }),
			segString("neckline", func(f internal.Fields) *string { return f.Neckline }),
			segString("pattern", func(f internal.Fields) *string { return f.Pattern }),
			{
				Name:   "size",
				When:   func(f internal.Fields) bool { return f.Size != nil },
				Render: func(f internal.Fields) string { return "taille " + *f.Size },
			},
			segString("gender", func(f internal.Fields) *string { return f.Gender }),
			segString("color", func(f internal.Fields) *string { return f.Color }),
			segSKU(),
		},
	}
}

func segType() Segment {
	return Segment{
		Name:   "type",
		When:   func(f internal.Fields) bool { return f.Type != nil },
		Render: func(f internal.Fields) string { return *f.Type },
	}
}

func segString(name string, get func(internal.Fields) *string) Segment {
	return Segment{
		Name:   name,
		When:   func(f internal.Fields) bool { return get(f) != nil },
		Render: func(f internal.Fields) string { return *get(f) },
	}
}

func segSKU() Segment {
	return Segment{
		Name:   "sku",
		When:   func(f internal.Fields) bool { return f.SKU != nil },
		Render: func(f internal.Fields) string { return "- " + *f.SKU },
	}
}
