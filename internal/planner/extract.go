package planner

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"chatstream/internal/wire"
)

var errNoPlanFound = errors.New("planner: no plan array found in model response")

// rawPlanObject mirrors the shape the model is instructed to emit:
// {"type": "...", "data": {...}}.
type rawPlanObject struct {
	Type wire.Kind      `json:"type"`
	Data map[string]any `json:"data"`
}

// codeFence strips Markdown code-fence wrappers a model sometimes adds
// despite instructions to the contrary.
var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// singleQuotedKey repairs the single most common malformed-JSON pattern:
// single-quoted strings where the model substituted Python-style syntax.
var singleQuotedKey = regexp.MustCompile(`'`)

// extractPlan finds the last delimited region in the model's text; if
// none exists, it falls back to best-effort JSON extraction by stripping
// code fences and repairing quotes.
func extractPlan(text string) ([]rawPlanObject, error) {
	if region, ok := lastDelimited(text); ok {
		if objs, err := parsePlanArray(region); err == nil {
			return objs, nil
		}
	}

	candidate := text
	if m := codeFence.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil, errNoPlanFound
	}
	if objs, err := parsePlanArray(candidate); err == nil {
		return objs, nil
	}

	repaired := singleQuotedKey.ReplaceAllString(candidate, `"`)
	return parsePlanArray(repaired)
}

// lastDelimited returns the text between the last pair of wire.Delimiter
// occurrences, scanning from the end so a model that echoes the
// instructions (which also contain the delimiter) still yields its actual
// answer.
func lastDelimited(text string) (string, bool) {
	last := strings.LastIndex(text, wire.Delimiter)
	if last == -1 {
		return "", false
	}
	prefix := text[:last]
	prevStart := strings.LastIndex(prefix, wire.Delimiter)
	if prevStart == -1 {
		return "", false
	}
	return strings.TrimSpace(text[prevStart+len(wire.Delimiter) : last]), true
}

func parsePlanArray(s string) ([]rawPlanObject, error) {
	var objs []rawPlanObject
	if err := json.Unmarshal([]byte(s), &objs); err != nil {
		return nil, err
	}
	return objs, nil
}
