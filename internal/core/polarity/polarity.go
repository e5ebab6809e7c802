// Package polarity is a stem-indexed English polarity scorer.
// Word valences come from VADER and are stored under their Snowball stem,
// so stemmed input tokens always look up the same key the lexicon was built with
package polarity

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/kljensen/snowball"
)

//go:embed seed.txt
var seed string

// ErrEmpty is returned when Score is called without stems
var ErrEmpty = errors.New("polarity: no stems to score")

var negatorWords = []string{"not", "never", "nothing", "neither", "none", "no", "nor", "without"}

// Options configures a Scorer
type Options struct {
	// Negation flips the valence of the stem right after a negator; two negators in a row cancel
	Negation bool
	// Vocabulary is valued in addition to the embedded seed list
	Vocabulary []string
}

// Scorer values stems against a fixed valence table. Immutable after New
type Scorer struct {
	valence  map[string]float64
	negators map[string]struct{}
	negation bool
}

// New values every vocabulary and seed word with VADER and indexes it by stem.
// Several words with the same stem average their non-zero valences
func New(opt Options) *Scorer {
	vader := govader.NewSentimentIntensityAnalyzer()

	sums := map[string]float64{}
	counts := map[string]int{}
	seen := map[string]struct{}{}
	add := func(w string) {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || strings.HasPrefix(w, "#") {
			return
		}
		if _, dup := seen[w]; dup {
			return
		}
		seen[w] = struct{}{}
		v := vader.PolarityScores(w).Compound
		if v == 0 {
			return
		}
		st := Stem(w)
		sums[st] += v
		counts[st]++
	}
	for _, w := range strings.Split(seed, "\n") {
		add(w)
	}
	for _, w := range opt.Vocabulary {
		// glosses can be multi-word
		for _, f := range strings.Fields(w) {
			add(f)
		}
	}

	s := &Scorer{
		valence:  make(map[string]float64, len(sums)),
		negators: make(map[string]struct{}, len(negatorWords)),
		negation: opt.Negation,
	}
	for st, sum := range sums {
		s.valence[st] = sum / float64(counts[st])
	}
	for _, w := range negatorWords {
		s.negators[Stem(w)] = struct{}{}
	}
	return s
}

// Stem returns the English Snowball stem of token, or token itself when stemming fails
func Stem(token string) string {
	st, err := snowball.Stem(token, "english", true)
	if err != nil || st == "" {
		return token
	}
	return st
}

// Stem implements the scorer capability
func (s *Scorer) Stem(token string) string { return Stem(token) }

// Score averages the valence of stems over all stems, unknown stems count as 0.
// The result lies in [-1,1]
func (s *Scorer) Score(stems []string) (float64, error) {
	if len(stems) == 0 {
		return 0, ErrEmpty
	}
	sum := 0.0
	negate := false
	for _, st := range stems {
		if s.negation {
			if _, ok := s.negators[st]; ok {
				// not not cancels out
				negate = !negate
				continue
			}
		}
		// a negator reaches only the stem right after it
		v := s.valence[st]
		if negate {
			v = -v
			negate = false
		}
		sum += v
	}
	return sum / float64(len(stems)), nil
}

// Valence returns the stored valence for a stem
func (s *Scorer) Valence(stem string) (float64, bool) {
	v, ok := s.valence[stem]
	return v, ok
}

// Size is the number of valued stems
func (s *Scorer) Size() int { return len(s.valence) }
