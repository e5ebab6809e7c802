package sentiment

import (
	"strings"
	"unicode"
)

// Gloss maps normalized Portuguese words to an English gloss. Immutable, shared read-only
type Gloss map[string]string

// Translate glosses text word by word. Each whitespace separated word is looked up with
// non-word characters stripped; unmapped words pass through unchanged
func (g Gloss) Translate(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if en, ok := g[stripNonWord(w)]; ok {
			words[i] = en
		}
	}
	return strings.Join(words, " ")
}

func stripNonWord(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.In(r, unicode.Mn, unicode.Pc) {
			return r
		}
		return -1
	}, s)
}
