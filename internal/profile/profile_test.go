package profile

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuiltinKeys(t *testing.T) {
	reg := Builtin()
	want := []string{"base", "jean_levis", "pull_tommy", "jacket_carhartt", "polaire_outdoor"}
	if got := reg.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys=%v", got)
	}
	for _, key := range want {
		if _, err := reg.Get(key); err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := Builtin().Get("jean_diesel")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("err=%v", err)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&Profile{Key: "x"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := reg.Register(&Profile{Key: "x"}); !errors.Is(err, ErrDuplicateProfile) {
		t.Fatalf("err=%v", err)
	}
	if err := reg.Register(&Profile{}); err == nil {
		t.Fatalf("empty key accepted")
	}
}

func TestRegistryExtension(t *testing.T) {
	reg := Builtin()
	custom := &Profile{Key: "jean_diesel", FitSynonyms: genericFits()}
	if err := reg.Register(custom); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := reg.Get("jean_diesel")
	if err != nil || got != custom {
		t.Fatalf("get: %v %v", got, err)
	}
	keys := reg.Keys()
	if keys[len(keys)-1] != "jean_diesel" {
		t.Fatalf("keys=%v", keys)
	}
}

func TestSizeTableLookups(t *testing.T) {
	p := &Profile{Key: "x", SizeFRToUS: map[string]string{"42": "W32"}}
	if us, ok := p.USFromFR("42"); !ok || us != "W32" {
		t.Fatalf("us=%q ok=%v", us, ok)
	}
	if fr, ok := p.FRFromUS("W32"); !ok || fr != "42" {
		t.Fatalf("fr=%q ok=%v", fr, ok)
	}
	if _, ok := p.USFromFR("44"); ok {
		t.Fatalf("unexpected hit")
	}

	bare := &Profile{Key: "y"}
	if _, ok := bare.USFromFR("42"); ok {
		t.Fatalf("lookup without table")
	}
	if _, ok := bare.FRFromUS("W32"); ok {
		t.Fatalf("reverse lookup without table")
	}
}

func TestThresholdDefaults(t *testing.T) {
	reg := BuiltinWith(Thresholds{})
	p, err := reg.Get("jean_levis")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.CottonMinPct != DefaultCottonMinPct || p.ElastaneMinPct != DefaultElastaneMinPct {
		t.Fatalf("thresholds: %v %v", p.CottonMinPct, p.ElastaneMinPct)
	}

	reg = BuiltinWith(Thresholds{CottonMinPct: 80, ElastaneMinPct: 5})
	p, _ = reg.Get("jean_levis")
	if p.CottonMinPct != 80 || p.ElastaneMinPct != 5 {
		t.Fatalf("override thresholds: %v %v", p.CottonMinPct, p.ElastaneMinPct)
	}
}
