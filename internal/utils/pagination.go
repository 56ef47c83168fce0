// Package utils provides small, domain-free helpers shared across layers.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 int and falls back to def when s is
// empty or malformed. Query parameters like limit/offset go through here so
// junk input degrades to the documented defaults instead of erroring.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
