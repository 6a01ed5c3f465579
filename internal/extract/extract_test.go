package extract

import (
	"errors"
	"testing"
)

func TestExtractVerbatim(t *testing.T) {
	raw, err := Extract(`{"type": "Jean", "brand": "Levi's"}`)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["type"] != "Jean" || raw["brand"] != "Levi's" {
		t.Fatalf("unexpected raw: %+v", raw)
	}
}

func TestExtractFenced(t *testing.T) {
	text := "Here is the result:\n```json\n{\"type\": \"Jean\"}\n```\nHope this helps!"
	raw, err := Extract(text)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["type"] != "Jean" {
		t.Fatalf("type=%v", raw["type"])
	}
}

func TestExtractProseClamped(t *testing.T) {
	raw, err := Extract(`Sure! {"model": "501"} Let me know.`)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["model"] != "501" {
		t.Fatalf("model=%v", raw["model"])
	}
}

func TestExtractTrailingComma(t *testing.T) {
	raw, err := Extract(`{"type": "Jean", "color": "bleu",}`)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["color"] != "bleu" {
		t.Fatalf("color=%v", raw["color"])
	}
}

func TestExtractSingleQuotes(t *testing.T) {
	raw, err := Extract(`{'type': 'Jean', 'model': '501'}`)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["type"] != "Jean" || raw["model"] != "501" {
		t.Fatalf("unexpected raw: %+v", raw)
	}
}

func TestExtractRepairKeepsStringContent(t *testing.T) {
	// A comma before a brace inside a string value must survive the repair.
	raw, err := Extract(`{"defects": "tache, }voir photos",}`)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["defects"] != "tache, }voir photos" {
		t.Fatalf("defects=%v", raw["defects"])
	}
}

func TestExtractUnknownKeysPreserved(t *testing.T) {
	raw, err := Extract(`{"type": "Jean", "mystery": 7}`)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if raw["mystery"] != 7.0 {
		t.Fatalf("mystery=%v", raw["mystery"])
	}
}

func TestExtractFailureKeepsRaw(t *testing.T) {
	_, err := Extract("the model refused to answer")
	if err == nil {
		t.Fatalf("expected error")
	}
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("error type: %T", err)
	}
	if exErr.Raw != "the model refused to answer" {
		t.Fatalf("raw=%q", exErr.Raw)
	}
}

func TestExtractRejectsNonObject(t *testing.T) {
	if _, err := Extract(`["not", "an", "object"]`); err == nil {
		t.Fatalf("expected error for array")
	}
	if _, err := Extract(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
