package usecase

import (
	"math"
	"strconv"
	"strings"
)

// The assistant emits scalars in whatever shape it feels like: 5000,
// "5 000,00", "$5000". The normalizers below are total functions over
// arbitrary JSON values; failure is absence, never an error.

// parseNumber converts an untyped JSON scalar to a finite float64.
// Strings are stripped down to digits and separators, then parsed with a
// locale heuristic: when both '.' and ',' appear the later one is the
// decimal mark; a lone comma followed by exactly three digits is a
// thousands separator, otherwise a decimal comma.
func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		return parseNumericString(n)
	}
	return 0, false
}

func parseNumericString(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case strings.Count(cleaned, ",") == 1 && len(cleaned)-lastComma-1 != 3:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	default:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	if cleaned == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

// parseInt applies parseNumber and truncates toward zero
func parseInt(v any) (int, bool) {
	n, ok := parseNumber(v)
	if !ok {
		return 0, false
	}
	return int(math.Trunc(n)), true
}

// parseString accepts only strings, trimmed; no coercion from other types
func parseString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
