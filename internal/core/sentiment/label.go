// Package sentiment scores normalized Portuguese text against a fixed lexicon,
// optionally blended with an external stem-based polarity scorer
package sentiment

import (
	"fmt"
	"strings"
)

// Label is the sentiment class. Wire values keep the Portuguese labels clients expect
type Label string

const (
	// Positive means the score crossed the positive threshold
	Positive Label = "positivo"
	// Negative means the score crossed the negative threshold
	Negative Label = "negativo"
	// Neutral is everything in between, thresholds included
	Neutral Label = "neutro"
)

// Mode selects how the final score is computed
type Mode string

const (
	// ModeLexiconOnly scores with the local lexicon only
	ModeLexiconOnly Mode = "lexicon-only"
	// ModeBlended mixes the local lexicon score with the external polarity score
	ModeBlended Mode = "blended"
)

// ParseMode accepts the configured mode name, case-insensitive
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLexiconOnly, "lexicon":
		return ModeLexiconOnly, nil
	case ModeBlended, "":
		return ModeBlended, nil
	default:
		return "", fmt.Errorf("sentiment: unknown scoring mode %q", s)
	}
}
