// Package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"
	"path/filepath"

	"sentilex/internal/core/sentiment"
	"sentilex/internal/platform/config"
	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/metrics"
	phttp "sentilex/internal/platform/net/http"
	"sentilex/internal/platform/store"

	"sentilex/internal/modkit"
	"sentilex/internal/modkit/httpkit"
	"sentilex/internal/modkit/module"
	"sentilex/internal/modkit/swaggerkit"

	analyzemod "sentilex/internal/services/api/analyze/module"
	histmod "sentilex/internal/services/api/history/module"
	metamod "sentilex/internal/services/api/meta/module"
	archivemod "sentilex/internal/services/archive/module"

	"github.com/jonboulle/clockwork"
)

// Options are the API options
type Options struct {
	// Config is the CORE_API_ scoped view
	Config config.Conf
	// KVConfig is the SERVICE_VALKEY_ scoped view
	KVConfig config.Conf
	Store    *store.Store
	Logger   *logger.Logger
	Scorer   *sentiment.Scorer
	Clock    clockwork.Clock

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// CORSOrigins restricts cross origin callers; empty allows any
	CORSOrigins []string

	// StaticDir serves a browser frontend at / when set
	StaticDir   string
	StaticIndex string
}

// FromConfig fills the toggles and static settings from a CORE_API_ scoped cfg
func FromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		EnableMetrics:  cfg.MayBool("METRICS", true),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", nil),
		StaticDir:      cfg.MayString("STATIC_DIR", ""),
		StaticIndex:    cfg.MayString("STATIC_INDEX", "frontend.html"),
	}
}

// Mount mounts the API service onto the given router
func Mount(ctx context.Context, r phttp.Router, opt Options) {
	if opt.Scorer == nil {
		panic("api.Mount requires a Scorer")
	}
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	// shared deps for modules
	deps := modkit.DepsFromStore(*log, opt.Config, opt.Store)
	deps.Clock = opt.Clock

	// archive first, history forwards every record to its sink
	archive := archivemod.New(ctx, deps, archivemod.FromConfig(opt.Config))
	sink := module.MustPortsOf[archivemod.Ports](archive).Sink

	history := histmod.New(deps, histmod.FromConfig(opt.Config, opt.KVConfig),
		modkit.WithPorts(histmod.SinkPorts{Sink: sink}),
	)
	recorder := module.MustPortsOf[histmod.Ports](history).Recorder

	analyze := analyzemod.New(deps, opt.Scorer, analyzemod.FromConfig(opt.Config),
		modkit.WithPorts(analyzemod.RecorderPorts{Recorder: recorder}),
	)

	mods := []module.Module{
		metamod.New(deps, opt.Scorer),
		archive,
		history,
		analyze,
	}

	// swagger, profiler and metrics sit outside the API middleware stack
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}

	httpkit.MountAPI(r, "", httpkit.CommonStack(opt.CORSOrigins...), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	if opt.StaticDir != "" {
		mountStatic(r, opt.StaticDir, opt.StaticIndex)
	}
	log.Info().Int("modules", len(mods)).Str("mode", string(opt.Scorer.Mode())).Msg("api mounted")
}

// mountStatic serves dir at the root, with index answering GET /
func mountStatic(r phttp.Router, dir, index string) {
	files := http.FileServer(http.Dir(dir))
	if index != "" {
		page := filepath.Join(dir, filepath.Clean("/"+index))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, page)
		})
	}
	r.Handle("/*", files)
}
