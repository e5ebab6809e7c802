// Package tokenize splits normalized text into word tokens
package tokenize

import (
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r is considered a word character for boundary checks.
// Letters, numbers, combining marks (Mn) and connector punctuation (Pc, e.g. underscore).
// Apostrophe, hyphen and the rest of punctuation are boundaries
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// Words returns the maximal runs of word characters in s, in order.
// The result is never nil
func Words(s string) []string {
	out := make([]string, 0, len(s)/5+1)
	start := -1
	for i, r := range s {
		if isWord(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// Head returns at most n leading tokens as a fresh slice
func Head(tokens []string, n int) []string {
	if n < 0 || n > len(tokens) {
		n = len(tokens)
	}
	out := make([]string, n)
	copy(out, tokens[:n])
	return out
}
