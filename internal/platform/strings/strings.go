// Package strings provides string helpers shared by modules
package strings

import (
	std "strings"
	"unicode/utf8"
)

// Ellipsis is appended to shortened text
const Ellipsis = "..."

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// Prefix normalizes a route prefix, returning "" for the root
func Prefix(s string) string {
	s = std.Trim(std.TrimSpace(s), "/")
	if s == "" {
		return ""
	}
	return "/" + s
}

// Truncate keeps the first n runes of s and appends Ellipsis only when something was cut
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return head(s, n) + Ellipsis
}

// Preview keeps the first n runes of s and always appends Ellipsis
func Preview(s string, n int) string {
	if n < 0 {
		return s + Ellipsis
	}
	return head(s, n) + Ellipsis
}

func head(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
