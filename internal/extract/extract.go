package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"vintedgen/internal"
)

// ExtractionError reports that no JSON object could be recovered from the AI
// response. It keeps the offending text for diagnostics.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	snippet := e.Raw
	if len(snippet) > 200 {
		snippet = snippet[:200] + "..."
	}
	return fmt.Sprintf("no recoverable JSON object in AI response: %v (raw=%q)", e.Err, snippet)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

var fencePattern = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*\\})\\s*```")

// Extract recovers a JSON object from raw AI output. Attempts, in order of
// increasing invasiveness, first success wins:
//  1. verbatim parse,
//  2. markdown fences / surrounding prose stripped,
//  3. conservative syntax repair (trailing commas, single-quoted strings).
//
// Unknown top-level keys are preserved. Failure returns *ExtractionError.
func Extract(rawText string) (internal.RawExtraction, error) {
	raw := strings.TrimSpace(rawText)
	if raw == "" {
		return nil, &ExtractionError{Raw: rawText, Err: fmt.Errorf("empty response")}
	}

	candidates := []string{raw}
	if m := fencePattern.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	if clamped := clampToBraces(raw); clamped != "" && clamped != raw {
		candidates = append(candidates, clamped)
	}

	var lastErr error
	for _, candidate := range candidates {
		if parsed, err := parseObject(candidate); err == nil {
			return parsed, nil
		} else {
			lastErr = err
		}
	}
	for _, candidate := range candidates {
		repaired := repair(candidate)
		if repaired == candidate {
			continue
		}
		if parsed, err := parseObject(repaired); err == nil {
			return parsed, nil
		} else {
			lastErr = err
		}
	}

	return nil, &ExtractionError{Raw: rawText, Err: lastErr}
}

func parseObject(candidate string) (internal.RawExtraction, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, fmt.Errorf("top-level value is not an object")
	}
	return internal.RawExtraction(parsed), nil
}

// clampToBraces cuts leading and trailing prose around the outermost object.
func clampToBraces(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

// repair applies the two tolerated syntax fixes: trailing commas before a
// closing brace or bracket are dropped, and single-quoted strings become
// double-quoted. Both transforms are string-aware so content inside valid
// double-quoted strings is never touched.
func repair(candidate string) string {
	return dropTrailingCommas(rewriteSingleQuotes(candidate))
}

func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inString {
			b.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inString = false
			}
			continue
		}
		if r == '"' {
			inString = true
			b.WriteRune(r)
			continue
		}
		if r == ',' {
			j := i + 1
			for j < len(runes) && isJSONSpace(runes[j]) {
				j++
			}
			if j < len(runes) && (runes[j] == '}' || runes[j] == ']') {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func rewriteSingleQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inDouble := false
	inSingle := false
	escaped := false
	for _, r := range s {
		switch {
		case inDouble:
			b.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inDouble = false
			}
		case inSingle:
			if escaped {
				escaped = false
				if r == '\'' {
					b.WriteRune('\'')
				} else {
					b.WriteRune('\\')
					b.WriteRune(r)
				}
				continue
			}
			switch r {
			case '\\':
				escaped = true
			case '\'':
				inSingle = false
				b.WriteRune('"')
			case '"':
				b.WriteString(`\"`)
			default:
				b.WriteRune(r)
			}
		default:
			switch r {
			case '"':
				inDouble = true
				b.WriteRune(r)
			case '\'':
				inSingle = true
				b.WriteRune('"')
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func isJSONSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
