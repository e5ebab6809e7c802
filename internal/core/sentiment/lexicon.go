package sentiment

import (
	"fmt"
	"sort"
	"strings"
)

// Lexicon holds two disjoint sets of normalized word forms. Immutable after construction
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewLexicon builds a Lexicon from already normalized words.
// Empty words are rejected, duplicates collapse, and a word in both lists is an error
func NewLexicon(positive, negative []string) (*Lexicon, error) {
	pos, err := wordSet("positive", positive)
	if err != nil {
		return nil, err
	}
	neg, err := wordSet("negative", negative)
	if err != nil {
		return nil, err
	}

	var both []string
	for w := range pos {
		if _, ok := neg[w]; ok {
			both = append(both, w)
		}
	}
	if len(both) > 0 {
		sort.Strings(both)
		return nil, fmt.Errorf("sentiment: lexicon sets intersect: %s", strings.Join(both, ", "))
	}
	return &Lexicon{positive: pos, negative: neg}, nil
}

func wordSet(kind string, words []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(words))
	for i, w := range words {
		if strings.TrimSpace(w) == "" {
			return nil, fmt.Errorf("sentiment: empty %s word at index %d", kind, i)
		}
		set[w] = struct{}{}
	}
	return set, nil
}

// IsPositive reports membership in the positive set
func (l *Lexicon) IsPositive(w string) bool {
	_, ok := l.positive[w]
	return ok
}

// IsNegative reports membership in the negative set
func (l *Lexicon) IsNegative(w string) bool {
	_, ok := l.negative[w]
	return ok
}

// Sizes returns the number of positive and negative entries
func (l *Lexicon) Sizes() (positive, negative int) {
	return len(l.positive), len(l.negative)
}

// LexiconScore is the outcome of matching tokens against a Lexicon
type LexiconScore struct {
	Positive         int
	Negative         int
	Local            float64
	DetectedPositive []string
	DetectedNegative []string
}

// ScoreLexicon counts lexicon hits over tokens, repeats count each time.
// Local is (pos-neg)/len(tokens), 0 when there are no tokens
func ScoreLexicon(l *Lexicon, tokens []string) LexiconScore {
	ls := LexiconScore{
		DetectedPositive: []string{},
		DetectedNegative: []string{},
	}
	if l == nil || len(tokens) == 0 {
		return ls
	}
	for _, t := range tokens {
		if l.IsPositive(t) {
			ls.Positive++
			ls.DetectedPositive = append(ls.DetectedPositive, t)
		}
		if l.IsNegative(t) {
			ls.Negative++
			ls.DetectedNegative = append(ls.DetectedNegative, t)
		}
	}
	ls.Local = float64(ls.Positive-ls.Negative) / float64(len(tokens))
	return ls
}
