package title

import (
	"strings"
	"testing"

	"vintedgen/internal"
	"vintedgen/internal/normalize"
	"vintedgen/internal/profile"
)

func jeans(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.Builtin().Get("jean_levis")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	return p
}

func TestBuildCanonicalJean(t *testing.T) {
	p := jeans(t)
	raw := internal.RawExtraction{
		"type": "Jean", "brand": "Levi's", "model": "501",
		"size_fr": "42", "size_us": "W32", "fit": "straight",
		"cotton_pct": 100.0, "gender": "homme", "color": "bleu brut",
	}
	got := Build(normalize.Normalize(raw, nil, p), p)
	want := "Jean Levi's 501 FR42 W32 coupe Straight/Droit 100% coton homme bleu brut"
	if got != want {
		t.Fatalf("title=%q want %q", got, want)
	}
}

func TestBuildEmptyFields(t *testing.T) {
	if got := Build(internal.Fields{}, jeans(t)); got != "" {
		t.Fatalf("title=%q", got)
	}
}

func TestBuildGarmentFallback(t *testing.T) {
	p := jeans(t)
	raw := internal.RawExtraction{"brand": "Levi's", "model": "501"}
	got := Build(normalize.Normalize(raw, nil, p), p)
	if got != "Jean Levi's 501" {
		t.Fatalf("title=%q", got)
	}

	// An extracted type always wins over the garment label.
	raw["type"] = "Jean slim"
	got = Build(normalize.Normalize(raw, nil, p), p)
	if got != "Jean slim Levi's 501" {
		t.Fatalf("title=%q", got)
	}
}

func TestBuildSubThresholdCottonOmitted(t *testing.T) {
	p := jeans(t)
	raw := internal.RawExtraction{"type": "Jean", "cotton_pct": 55.0}
	got := Build(normalize.Normalize(raw, nil, p), p)
	if got != "Jean" {
		t.Fatalf("title=%q", got)
	}
}

func TestBuildLowRiseAndStretch(t *testing.T) {
	p := jeans(t)
	raw := internal.RawExtraction{
		"type": "Jean", "rise_cm": 21.0, "elastane_pct": 2.0, "sku": "AB12",
	}
	got := Build(normalize.Normalize(raw, nil, p), p)
	want := "Jean taille basse stretch - AB12"
	if got != want {
		t.Fatalf("title=%q want %q", got, want)
	}
}

func TestBuildHighRiseNotLabelled(t *testing.T) {
	p := jeans(t)
	raw := internal.RawExtraction{"type": "Jean", "rise_type": "haute"}
	got := Build(normalize.Normalize(raw, nil, p), p)
	if strings.Contains(got, "taille basse") {
		t.Fatalf("high rise labelled low: %q", got)
	}
}

func TestBuildLengthNeverInTitle(t *testing.T) {
	p := jeans(t)
	raw := internal.RawExtraction{"type": "Jean", "size_us": "W28 L30"}
	got := Build(normalize.Normalize(raw, nil, p), p)
	if strings.Contains(got, "L30") {
		t.Fatalf("length leaked into title: %q", got)
	}
	if !strings.Contains(got, "W28") {
		t.Fatalf("waist missing: %q", got)
	}
}

func TestBuildPullVintage(t *testing.T) {
	reg := profile.Builtin()
	p, err := reg.Get("pull_tommy")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	raw := internal.RawExtraction{
		"type": "Pull", "neckline": "col rond", "color": "vert forêt",
	}
	got := Build(normalize.Normalize(raw, nil, p), p)
	want := "Pull Vintage col rond vert forêt"
	if got != want {
		t.Fatalf("title=%q want %q", got, want)
	}

	raw["brand"] = "Tommy Hilfiger"
	got = Build(normalize.Normalize(raw, nil, p), p)
	if strings.Contains(got, "Vintage") {
		t.Fatalf("branded pull titled vintage: %q", got)
	}
}

func TestBuildJacketCarhartt(t *testing.T) {
	reg := profile.Builtin()
	p, err := reg.Get("jacket_carhartt")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	raw := internal.RawExtraction{
		"brand": "Carhartt", "model": "Detroit", "size": "L",
		"color": "marron", "gender": "homme",
	}
	got := Build(normalize.Normalize(raw, nil, p), p)
	want := "Veste Carhartt modèle Detroit taille L couleur marron homme"
	if got != want {
		t.Fatalf("title=%q want %q", got, want)
	}
}

func TestBuildPolaireOutdoor(t *testing.T) {
	reg := profile.Builtin()
	p, err := reg.Get("polaire_outdoor")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	raw := internal.RawExtraction{
		"brand": "The North Face", "neckline": "col zippé", "size": "M", "color": "bleu marine",
	}
	got := Build(normalize.Normalize(raw, nil, p), p)
	want := "Polaire The North Face col zippé taille M bleu marine"
	if got != want {
		t.Fatalf("title=%q want %q", got, want)
	}
}

func TestBuildCustomProfileSegmentOrder(t *testing.T) {
	p := &profile.Profile{
		Key: "custom",
		Segments: []profile.Segment{
			{
				Name:   "color",
				When:   func(f internal.Fields) bool { return f.Color != nil },
				Render: func(f internal.Fields) string { return *f.Color },
			},
			{
				Name:   "brand",
				When:   func(f internal.Fields) bool { return f.Brand != nil },
				Render: func(f internal.Fields) string { return *f.Brand },
			},
		},
	}
	brand, color := "Levi's", "noir"
	got := Build(internal.Fields{Brand: &brand, Color: &color}, p)
	if got != "noir Levi's" {
		t.Fatalf("title=%q", got)
	}
}
