package lexicon

import (
	"sentilex/internal/core/polarity"
	"sentilex/internal/core/sentiment"
	"sentilex/internal/platform/logger"
)

// ScorerOptions selects how a pack is turned into a Scorer
type ScorerOptions struct {
	Mode          sentiment.Mode
	Negation      bool
	PreviewTokens int
	Logger        *logger.Logger
}

// NewScorer builds a Scorer from p. In blended mode the polarity scorer values
// the pack's gloss targets on top of its seed list
func (p *Pack) NewScorer(opt ScorerOptions) (*sentiment.Scorer, error) {
	lex, err := p.Lexicon()
	if err != nil {
		return nil, err
	}
	cfg := sentiment.Config{
		Mode:          opt.Mode,
		Lexicon:       lex,
		Gloss:         p.Gloss,
		PreviewTokens: opt.PreviewTokens,
		Logger:        opt.Logger,
	}
	if opt.Mode != sentiment.ModeLexiconOnly {
		cfg.External = polarity.New(polarity.Options{
			Negation:   opt.Negation,
			Vocabulary: p.GlossTargets(),
		})
	}
	return sentiment.New(cfg)
}
