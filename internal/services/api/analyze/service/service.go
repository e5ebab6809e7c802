// Package service contains analyze workflows
package service

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"sentilex/internal/core/markup"
	"sentilex/internal/core/sentiment"
	perr "sentilex/internal/platform/errors"
	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/metrics"
	str "sentilex/internal/platform/strings"
	"sentilex/internal/services/api/analyze/domain"
	histdomain "sentilex/internal/services/api/history/domain"
)

// Defaults
const (
	DefaultMaxText  = 1000
	DefaultMaxBatch = 10

	// PreviewRunes is how much of each batch text is echoed back
	PreviewRunes = 50
)

// Client facing messages
const (
	MsgTextRequired = "Texto é obrigatório e deve ser uma string"
	MsgTextNotStr   = "Texto deve ser uma string"
	MsgTextsArray   = "Texts deve ser um array"
	MsgInternal     = "Erro interno do servidor"
	msgTooLong      = "Texto muito longo. Máximo %d caracteres."
	msgTooMany      = "Máximo %d textos por vez"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Options control service behavior. Zero limits pick the defaults
type Options struct {
	MaxText  int
	MaxBatch int
}

// Svc implements the service port
type Svc struct {
	scorer   domain.Analyzer
	recorder histdomain.RecorderPort
	maxText  int
	maxBatch int
}

// New constructs the service
func New(scorer domain.Analyzer, recorder histdomain.RecorderPort, opt Options) *Svc {
	if scorer == nil {
		panic("analyze.Service requires a non nil Analyzer")
	}
	if recorder == nil {
		panic("analyze.Service requires a non nil RecorderPort (history)")
	}
	s := &Svc{scorer: scorer, recorder: recorder, maxText: opt.MaxText, maxBatch: opt.MaxBatch}
	if s.maxText <= 0 {
		s.maxText = DefaultMaxText
	}
	if s.maxBatch <= 0 {
		s.maxBatch = DefaultMaxBatch
	}
	return s
}

// Analyze scores one text and records it in history
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeOutput, error) {
	text, ok := asString(in.Text)
	if !ok || text == "" {
		return domain.AnalyzeOutput{}, perr.WithField(perr.New(perr.ErrorCodeValidation, MsgTextRequired), "text")
	}
	if err := s.checkLength(text); err != nil {
		return domain.AnalyzeOutput{}, err
	}

	res := s.scorer.Analyze(plain(text, in.Format))
	observe(s.scorer, res.Sentiment, res.WordCount, "single")

	rec, err := s.recorder.Record(ctx, text, res)
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("analyze: record failed")
		return domain.AnalyzeOutput{}, perr.Wrap(err, perr.CodeOf(err), MsgInternal)
	}
	return domain.AnalyzeOutput{ID: rec.ID, Result: res}, nil
}

// Batch scores each element independently. Bad elements become error items
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) ([]domain.BatchItem, error) {
	var texts []json.RawMessage
	if err := json.Unmarshal(in.Texts, &texts); err != nil || texts == nil {
		return nil, perr.WithField(perr.New(perr.ErrorCodeValidation, MsgTextsArray), "texts")
	}
	if len(texts) > s.maxBatch {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, msgTooMany, s.maxBatch), "texts")
	}
	metrics.BatchSize.Observe(float64(len(texts)))

	out := make([]domain.BatchItem, len(texts))
	for i, raw := range texts {
		out[i].Index = i
		text, ok := asString(raw)
		if !ok {
			out[i].Error = MsgTextNotStr
			continue
		}
		if err := s.checkLength(text); err != nil {
			out[i].Error = perr.WireFrom(err).Message
			continue
		}
		res := s.scorer.Analyze(plain(text, in.Format))
		observe(s.scorer, res.Sentiment, res.WordCount, "batch")
		out[i].Text = str.Preview(text, PreviewRunes)
		out[i].Result = &res
	}
	logger.C(ctx).Debug().Int("texts", len(texts)).Msg("batch analyzed")
	return out, nil
}

func (s *Svc) checkLength(text string) error {
	if utf8.RuneCountInString(text) > s.maxText {
		return perr.WithField(perr.Newf(perr.ErrorCodeValidation, msgTooLong, s.maxText), "text")
	}
	return nil
}

// asString reports whether raw is a JSON string and decodes it
func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func plain(text, format string) string {
	if format == domain.FormatMarkdown {
		return markup.PlainText(text)
	}
	return text
}

func observe(a domain.Analyzer, label sentiment.Label, words int, source string) {
	metrics.AnalysesTotal.WithLabelValues(string(a.Mode()), string(label), source).Inc()
	metrics.AnalysisWords.Observe(float64(words))
}
