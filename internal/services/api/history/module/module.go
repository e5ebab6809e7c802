// Package module wires history into the API using modkit
package module

import (
	modkit "sentilex/internal/modkit"
	"sentilex/internal/modkit/httpkit"
	histhttp "sentilex/internal/services/api/history/http"
	histrepo "sentilex/internal/services/api/history/repo"
	histsvc "sentilex/internal/services/api/history/service"
)

// Module serves /history and /stats and records analyses for analyze
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the history module. Storage follows opts from FromConfig
func New(deps modkit.Deps, hopts Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("history")}, opts...)...)

	var repo histrepo.Repo
	backend := BackendMemory
	switch {
	case hopts.Backend == BackendValkey && deps.KV != nil:
		repo = histrepo.NewValkey(deps.KV, hopts.Key, hopts.Size)
		backend = BackendValkey
	case hopts.Backend == BackendValkey:
		deps.Log.Warn().Msg("history: valkey backend requested without a client, using memory")
		fallthrough
	default:
		repo = histrepo.NewMemory(hopts.Size)
	}

	// sink may be injected by the archive module
	sp, _ := b.Ports.(SinkPorts)

	svc := histsvc.New(repo, histsvc.Options{
		Clock:     deps.Clock,
		Sink:      sp.Sink,
		Backend:   backend,
		TextLimit: hopts.TextLimit,
	})

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { histhttp.Register(r, svc) }),
		ports: Ports{Service: svc, Recorder: svc},
	}
}
