package recommend

import (
	"encoding/json"
	"math"
	"strings"
)

// extractObject pulls a JSON object with the given required keys out of
// generated text. Generation output commonly wraps the object in markdown
// fences or surrounds it with prose, so extraction is two-stage: strict
// parse of the fence-stripped text first, then a bounded scan for the
// first balanced {...} substring. Anything less than an object carrying
// every required key is a miss.
func extractObject(raw string, required []string) (map[string]any, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil && hasKeys(obj, required) {
		return obj, true
	}

	block, ok := firstObject(cleaned)
	if !ok {
		return nil, false
	}

	obj = nil
	if err := json.Unmarshal([]byte(block), &obj); err == nil && hasKeys(obj, required) {
		return obj, true
	}

	return nil, false
}

func hasKeys(obj map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	return true
}

// firstObject returns the first brace-balanced {...} substring, tracking
// string literals and escapes so braces inside values do not miscount.
func firstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

// intField reads a numeric field. JSON numbers decode as float64; whole
// values are accepted, anything else is a schema miss.
func intField(obj map[string]any, key string) (int, bool) {
	f, ok := obj[key].(float64)
	if !ok {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}
