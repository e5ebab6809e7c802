package sentiment

import (
	"errors"
	"fmt"
	"math"

	"sentilex/internal/core/normalize"
	"sentilex/internal/core/tokenize"
	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/metrics"
)

// DefaultPreviewTokens is how many tokens the diagnostics echo back
const DefaultPreviewTokens = 10

// PolarityScorer is the external stem-based scorer used in blended mode
type PolarityScorer interface {
	Stem(token string) string
	Score(stems []string) (float64, error)
}

// Config wires a Scorer
type Config struct {
	Mode          Mode
	Lexicon       *Lexicon
	Gloss         Gloss
	External      PolarityScorer // nil scores 0 in blended mode
	PreviewTokens int            // 0 means DefaultPreviewTokens
	Logger        *logger.Logger // nil means logger.Named("sentiment")
}

// Result is the outcome of one analysis
type Result struct {
	Sentiment     Label       `json:"sentiment"`
	Confidence    int         `json:"confidence"`
	Score         float64     `json:"score"`
	WordCount     int         `json:"word_count"`
	PositiveWords int         `json:"positive_words"`
	NegativeWords int         `json:"negative_words"`
	Analysis      Diagnostics `json:"analysis"`
}

// Diagnostics explains how a Result was reached
type Diagnostics struct {
	Mode             Mode     `json:"mode"`
	Tokens           []string `json:"tokens"`
	DetectedPositive []string `json:"detected_positive"`
	DetectedNegative []string `json:"detected_negative"`

	// blended mode only
	NormalizedText string   `json:"normalized_text,omitempty"`
	GlossedText    string   `json:"glossed_text,omitempty"`
	ExternalTokens []string `json:"external_tokens,omitempty"`
	LocalScore     *float64 `json:"local_score,omitempty"`
	ExternalScore  *float64 `json:"external_score,omitempty"`
}

// Scorer runs the normalize, tokenize, score, blend and classify pipeline.
// It holds only immutable state and is safe for concurrent use
type Scorer struct {
	mode     Mode
	lex      *Lexicon
	gloss    Gloss
	external PolarityScorer
	preview  int
	log      *logger.Logger
}

// New validates cfg and returns a Scorer
func New(cfg Config) (*Scorer, error) {
	if cfg.Lexicon == nil {
		return nil, errors.New("sentiment: lexicon is required")
	}
	mode := cfg.Mode
	if mode == "" {
		mode = ModeBlended
	}
	if mode != ModeBlended && mode != ModeLexiconOnly {
		return nil, fmt.Errorf("sentiment: unknown scoring mode %q", mode)
	}
	preview := cfg.PreviewTokens
	if preview <= 0 {
		preview = DefaultPreviewTokens
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Named("sentiment")
	}
	gloss := cfg.Gloss
	if gloss == nil {
		gloss = Gloss{}
	}
	return &Scorer{
		mode:     mode,
		lex:      cfg.Lexicon,
		gloss:    gloss,
		external: cfg.External,
		preview:  preview,
		log:      log,
	}, nil
}

// Mode reports the configured scoring mode
func (s *Scorer) Mode() Mode { return s.mode }

// Lexicon exposes the read-only lexicon
func (s *Scorer) Lexicon() *Lexicon { return s.lex }

// GlossSize is the number of gloss entries
func (s *Scorer) GlossSize() int { return len(s.gloss) }

// Analyze scores text. It never fails: empty or symbol-only input is neutral
// with zero words, and external scorer failures degrade to an external score of 0
func (s *Scorer) Analyze(text string) Result {
	normalized := normalize.String(text)
	tokens := tokenize.Words(normalized)
	ls := ScoreLexicon(s.lex, tokens)

	diag := Diagnostics{
		Mode:             s.mode,
		Tokens:           tokenize.Head(tokens, s.preview),
		DetectedPositive: ls.DetectedPositive,
		DetectedNegative: ls.DetectedNegative,
	}

	var c Classification
	if s.mode == ModeLexiconOnly {
		c = Classify(ModeLexiconOnly, ls.Local, 0)
	} else {
		glossed := s.gloss.Translate(normalized)
		extTokens := tokenize.Words(glossed)
		ext := 0.0
		if len(tokens) > 0 && len(extTokens) > 0 {
			ext = s.externalScore(extTokens)
		}
		c = Classify(ModeBlended, ls.Local, ext)

		local, extR := Round2(ls.Local), Round2(ext)
		diag.NormalizedText = normalized
		diag.GlossedText = glossed
		diag.ExternalTokens = tokenize.Head(extTokens, s.preview)
		diag.LocalScore = &local
		diag.ExternalScore = &extR
	}

	return Result{
		Sentiment:     c.Label,
		Confidence:    Percent(c.Confidence),
		Score:         Round2(c.Score),
		WordCount:     len(tokens),
		PositiveWords: ls.Positive,
		NegativeWords: ls.Negative,
		Analysis:      diag,
	}
}

// externalScore stems and scores tokens, any error or panic yields 0
func (s *Scorer) externalScore(tokens []string) (score float64) {
	if s.external == nil {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn().Interface("panic", r).Msg("external polarity scorer panicked, using 0")
			metrics.ExternalScoreFailuresTotal.WithLabelValues("panic").Inc()
			score = 0
		}
	}()

	stems := make([]string, len(tokens))
	for i, t := range tokens {
		stems[i] = s.external.Stem(t)
	}
	v, err := s.external.Score(stems)
	if err != nil {
		s.log.Warn().Err(err).Int("tokens", len(stems)).Msg("external polarity scorer failed, using 0")
		metrics.ExternalScoreFailuresTotal.WithLabelValues("error").Inc()
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		s.log.Warn().Float64("score", v).Msg("external polarity scorer returned a non-finite score, using 0")
		metrics.ExternalScoreFailuresTotal.WithLabelValues("nonfinite").Inc()
		return 0
	}
	return v
}
