// Package service contains history workflows
package service

import (
	"context"
	"math"

	"sentilex/internal/core/sentiment"
	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/metrics"
	str "sentilex/internal/platform/strings"
	ptime "sentilex/internal/platform/time"
	"sentilex/internal/services/api/history/domain"
	"sentilex/internal/services/api/history/repo"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultTextLimit is how many runes of the input a record keeps
const DefaultTextLimit = 100

// Service defines the history service contract
type Service interface {
	domain.ServicePort
}

// Options configures a Svc. Zero values pick defaults
type Options struct {
	Clock     clockwork.Clock
	Sink      domain.SinkPort
	Backend   string // metrics label
	TextLimit int
	NewID     func() string
}

// Svc implements the history service. The repo is its only mutable state
type Svc struct {
	repo      repo.Repo
	clock     clockwork.Clock
	sink      domain.SinkPort
	backend   string
	textLimit int
	newID     func() string
}

// New constructs a history service
func New(r repo.Repo, opt Options) *Svc {
	if r == nil {
		panic("history.Service requires a non nil Repo")
	}
	s := &Svc{
		repo:      r,
		clock:     opt.Clock,
		sink:      opt.Sink,
		backend:   opt.Backend,
		textLimit: opt.TextLimit,
		newID:     opt.NewID,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.backend == "" {
		s.backend = "memory"
	}
	if s.textLimit <= 0 {
		s.textLimit = DefaultTextLimit
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Record stores res as the newest analysis and forwards it to the sink
func (s *Svc) Record(ctx context.Context, text string, res sentiment.Result) (domain.Record, error) {
	rec := domain.Record{
		ID:        s.newID(),
		Text:      str.Truncate(text, s.textLimit),
		Result:    res,
		Timestamp: s.clock.Now().UTC(),
	}
	err := s.repo.Push(ctx, rec)
	metrics.HistoryRecordsTotal.WithLabelValues(s.backend, metrics.Status(err)).Inc()
	if err != nil {
		return domain.Record{}, err
	}
	if s.sink != nil {
		s.sink.Write(ctx, rec)
	}
	logger.C(ctx).Debug().Str("id", rec.ID).Str("sentiment", string(res.Sentiment)).Msg("analysis recorded")
	return rec, nil
}

// List returns the compact history, newest first
func (s *Svc) List(ctx context.Context) ([]domain.ListItem, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ListItem, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Item())
	}
	return out, nil
}

// Stats aggregates the kept records
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return Aggregate(recs), nil
}

// Aggregate computes Stats over newest-first records
func Aggregate(recs []domain.Record) domain.Stats {
	st := domain.Stats{TotalAnalyses: len(recs)}
	if len(recs) == 0 {
		return st
	}
	sum := 0
	for _, r := range recs {
		switch r.Result.Sentiment {
		case sentiment.Positive:
			st.SentimentBreakdown.Positive++
		case sentiment.Negative:
			st.SentimentBreakdown.Negative++
		case sentiment.Neutral:
			st.SentimentBreakdown.Neutral++
		}
		sum += r.Result.Confidence
	}
	st.AverageConfidence = int(math.Round(float64(sum) / float64(len(recs))))
	st.LastAnalysis = ptime.Ptr(recs[0].Timestamp)
	return st
}
