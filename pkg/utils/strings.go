// Package utils provides common string utility functions.
package utils

import "strings"

// NonEmpty returns the trimmed, non-empty subset of values, in order.
func NonEmpty(values ...string) []string {
	var out []string

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		out = append(out, v)
	}

	return out
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
