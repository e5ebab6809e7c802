// Package normalize provides the deterministic text normalizer used by the scorer
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC composition so decomposed accents become single letters
// 3 Lower casing
// 4 Anything that is not an ASCII word char, whitespace or a Latin accented letter becomes a space
// 5 Collapse whitespace to single spaces and trim
//
// Accented letters survive every stage. "péssimo" stays "péssimo"
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Latin-1 Supplement and Latin Extended-A letters kept as word characters
const (
	accentLo = 'À'
	accentHi = 'ſ'
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains, cases.Caser is stateful
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			cases.Lower(language.Portuguese),
		)
	},
}

var std = New()

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// String normalizes s with the package default Normalizer
func String(s string) string { return std.Normalize(s) }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-3 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(norm.NFC.String(s))
	}

	// 4-5 replace foreign runes and collapse
	return collapse(ns)
}

// Keep reports whether r survives normalization as a non-space character
func Keep(r rune) bool {
	switch {
	case r < 0x80:
		return r == '_' ||
			('a' <= r && r <= 'z') ||
			('A' <= r && r <= 'Z') ||
			('0' <= r && r <= '9')
	case r == '×' || r == '÷': // multiplication and division signs
		return false
	default:
		return accentLo <= r && r <= accentHi
	}
}

// collapse writes kept runes and turns every run of other runes into one space
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	gap := false
	for _, r := range s {
		if !Keep(r) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte(' ')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}
