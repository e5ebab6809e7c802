// Package module wires analyze into the API using modkit
package module

import (
	"net/http"

	modkit "sentilex/internal/modkit"
	"sentilex/internal/modkit/httpkit"
	"sentilex/internal/platform/net/middleware"
	"sentilex/internal/services/api/analyze/domain"
	anhttp "sentilex/internal/services/api/analyze/http"
	ansvc "sentilex/internal/services/api/analyze/service"
)

// Module serves /analyze and /batch-analyze at the API root
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the analyze module. The history recorder must arrive through
// modkit.WithPorts(RecorderPorts{...})
func New(deps modkit.Deps, scorer domain.Analyzer, aopts Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analyze")}, opts...)...)

	rp, ok := b.Ports.(RecorderPorts)
	if !ok || rp.Recorder == nil {
		panic("analyze module requires RecorderPorts with a non nil Recorder")
	}

	s := ansvc.New(scorer, rp.Recorder, ansvc.Options{
		MaxText:  aopts.MaxText,
		MaxBatch: aopts.MaxBatch,
	})

	// throttle runs before any module middleware
	var throttle []func(http.Handler) http.Handler
	if aopts.RateRPS > 0 {
		throttle = append(throttle, middleware.RateLimit(aopts.RateRPS, aopts.RateBurst))
		deps.Log.Debug().Float64("rps", aopts.RateRPS).Int("burst", aopts.RateBurst).Msg("analyze throttled")
	}

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { anhttp.Register(r, s) }, throttle...),
		ports: Ports{Service: s},
	}
}
