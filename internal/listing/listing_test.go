package listing

import (
	"errors"
	"testing"

	"vintedgen/internal"
)

func sp(v string) *string { return &v }

func fp(v float64) *float64 { return &v }

func TestFromFieldsValid(t *testing.T) {
	f := internal.Fields{Brand: sp("Levi's"), CottonPct: fp(100)}
	l, err := FromFields(f, "Jean Levi's 501", "desc")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if l.Title() != "Jean Levi's 501" || l.Description() != "desc" {
		t.Fatalf("accessors: %q %q", l.Title(), l.Description())
	}
	if got := l.Fields(); got.Brand == nil || *got.Brand != "Levi's" {
		t.Fatalf("fields=%+v", got)
	}
}

func TestFromFieldsEmptyTitle(t *testing.T) {
	_, err := FromFields(internal.Fields{}, "   ", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type: %T", err)
	}
	if len(verr.Fields) == 0 || verr.Fields[0] != "Title" {
		t.Fatalf("fields=%v", verr.Fields)
	}
}

func TestFromFieldsPercentRange(t *testing.T) {
	_, err := FromFields(internal.Fields{CottonPct: fp(140)}, "Jean", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type: %T", err)
	}
}

func TestToMap(t *testing.T) {
	l, err := FromFields(internal.Fields{Brand: sp("Levi's")}, "Jean Levi's", "desc")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	m := l.ToMap()
	if m["title"] != "Jean Levi's" || m["brand"] != "Levi's" {
		t.Fatalf("map=%+v", m)
	}
	if v, ok := m["color"]; !ok || v != nil {
		t.Fatalf("null field projection: %v %v", v, ok)
	}
}
