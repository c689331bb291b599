package util

import "strings"

// TruncateString shortens s to at most maxRunes runes, the "..." suffix
// included. Limits too small to hold the suffix return s unchanged.
func TruncateString(s string, maxRunes int) string {
	const suffix = "..."
	runes := []rune(s)
	if len(runes) <= maxRunes || maxRunes <= len(suffix) {
		return s
	}
	return string(runes[:maxRunes-len(suffix)]) + suffix
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitList splits a comma separated value, trimming entries and dropping
// empty ones. The result is never nil.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// IsBlank reports whether s is empty once whitespace is trimmed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
