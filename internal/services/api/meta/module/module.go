// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"

	"sentilex/internal/core/version"
	modkit "sentilex/internal/modkit"
	"sentilex/internal/modkit/httpkit"
	"sentilex/internal/modkit/module"
	"sentilex/internal/platform/store/vk"

	metahttp "sentilex/internal/services/api/meta/http"

	"github.com/jonboulle/clockwork"
)

// Module serves /meta/*. It exposes no ports
type Module struct {
	modkit.Base
}

// New constructs a meta module. scorer may be nil when the caller has none to report
func New(deps modkit.Deps, scorer metahttp.ScorerInfo, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	hd := metahttp.Deps{
		ServiceName: version.ServiceName,
		StartedAt:   clock.Now(),
		Clock:       clock,
		Scorer:      scorer,
		Modules:     module.Names,
	}
	// leave interfaces nil for disabled stores so they report skipped
	if deps.PG != nil {
		hd.PG = deps.PG
	}
	if deps.CH != nil {
		hd.CH = deps.CH
	}
	if kv := deps.KV; kv != nil {
		hd.KV = metahttp.PingFunc(func(ctx context.Context) error { return vk.Ping(ctx, kv) })
	}

	return &Module{Base: b.Base(func(r httpkit.Router) { metahttp.Register(r, hd) })}
}

// Ports returns nil; nothing pulls from meta
func (m *Module) Ports() any { return nil }
