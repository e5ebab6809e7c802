// Package service fans history records out to the archive sinks
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/metrics"
	pnet "sentilex/internal/platform/net"
	histdomain "sentilex/internal/services/api/history/domain"
	"sentilex/internal/services/archive/domain"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds one Write across all sinks
const DefaultTimeout = 2 * time.Second

// Config controls the writer
type Config struct {
	Timeout time.Duration
	Log     *logger.Logger
}

// Writer implements histdomain.SinkPort over any number of sinks
type Writer struct {
	sinks   []domain.SinkPort
	timeout time.Duration
	log     *logger.Logger
}

var _ histdomain.SinkPort = (*Writer)(nil)

// NewWriter returns a writer over sinks. With no sinks Write is a no-op
func NewWriter(sinks []domain.SinkPort, cfg Config) *Writer {
	w := &Writer{sinks: sinks, timeout: cfg.Timeout, log: cfg.Log}
	if w.timeout <= 0 {
		w.timeout = DefaultTimeout
	}
	if w.log == nil {
		w.log = logger.Named("archive")
	}
	return w
}

// Sinks reports the configured sink names
func (w *Writer) Sinks() []string {
	out := make([]string, len(w.sinks))
	for i, s := range w.sinks {
		out[i] = s.Name()
	}
	return out
}

// EnsureSchema prepares every sink and joins the failures
func (w *Writer) EnsureSchema(ctx context.Context) error {
	var errs []error
	for _, s := range w.sinks {
		if err := s.EnsureSchema(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Write archives rec in every sink concurrently. Failures are logged and counted,
// never returned. The caller's cancellation does not abort the write, the timeout does
func (w *Writer) Write(ctx context.Context, rec histdomain.Record) {
	if len(w.sinks) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	evs := []domain.Event{domain.EventFrom(rec)}

	var g errgroup.Group
	for _, s := range w.sinks {
		s := s
		g.Go(func() error {
			err := s.Insert(ctx, evs)
			metrics.ArchiveWritesTotal.WithLabelValues(s.Name(), metrics.Status(err)).Inc()
			if err != nil {
				w.log.Warn().Err(err).Str("sink", s.Name()).Str("id", rec.ID).
					Str("request_id", pnet.RequestID(ctx)).Msg("archive write failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}
