// Package strings provides small string helpers
package strings

import std "strings"

// IsBlank reports whether s has no non-whitespace content
func IsBlank(s string) bool { return std.TrimSpace(s) == "" }

// ContainsAny reports whether s contains any of subs; empty subs never match
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if sub != "" && std.Contains(s, sub) {
			return true
		}
	}
	return false
}
