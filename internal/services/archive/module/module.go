// Package module wires the archive writer and exposes it as a history sink
package module

import (
	"context"

	"sentilex/internal/modkit"
	"sentilex/internal/platform/logger"
	"sentilex/internal/services/archive/domain"
	"sentilex/internal/services/archive/repo"
	"sentilex/internal/services/archive/service"
)

// Module defines the archive module
type Module struct {
	modkit.Base
	writer *service.Writer
	ports  Ports
}

// New builds sinks for the enabled stores. When opts.EnsureSchema is set the
// tables are created up front; a sink whose schema fails is dropped with a warning
func New(ctx context.Context, deps modkit.Deps, opts Options) *Module {
	log := logger.Named("archive")

	var sinks []domain.SinkPort
	if opts.Enabled {
		if deps.PG != nil {
			sinks = append(sinks, repo.NewPG(deps.PG))
		}
		if deps.CH != nil {
			sinks = append(sinks, repo.NewCH(deps.CH))
		}
	}

	if opts.EnsureSchema {
		kept := sinks[:0]
		for _, s := range sinks {
			if err := s.EnsureSchema(ctx); err != nil {
				log.Warn().Err(err).Str("sink", s.Name()).Msg("archive schema failed, sink disabled")
				continue
			}
			kept = append(kept, s)
		}
		sinks = kept
	}

	w := service.NewWriter(sinks, service.Config{Timeout: opts.Timeout, Log: log})
	log.Info().Strs("sinks", w.Sinks()).Msg("archive ready")

	return &Module{
		Base:   modkit.Build(modkit.WithName("archive")).Base(nil),
		writer: w,
		ports:  Ports{Sink: w},
	}
}

// Ports returns the module ports (Sink)
func (m *Module) Ports() any { return m.ports }
