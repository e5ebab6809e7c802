// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"sentilex/internal/core/sentiment"
	"sentilex/internal/core/version"
	"sentilex/internal/modkit/httpkit"

	"github.com/jonboulle/clockwork"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(stdctx.Context) error

// Ping calls f
func (f PingFunc) Ping(ctx stdctx.Context) error { return f(ctx) }

// ScorerInfo is the read-only view of the configured scorer
type ScorerInfo interface {
	Mode() sentiment.Mode
	Lexicon() *sentiment.Lexicon
	GlossSize() int
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       clockwork.Clock
	PG          any
	CH          any
	KV          any
	Scorer      ScorerInfo

	// Modules lists the mounted module names for /service
	Modules func() []string

	// ReadyTimeout bounds all dependency pings, default 2s
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/scorer", h.scorer)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"sentilex-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"sentilex-api"`
	Started string   `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules,omitempty"`
}

// ScorerResponse reports how analyses are scored
type ScorerResponse struct {
	Mode          sentiment.Mode    `json:"mode" example:"blended"`
	PositiveWords int               `json:"positive_words" example:"40"`
	NegativeWords int               `json:"negative_words" example:"40"`
	GlossEntries  int               `json:"gloss_entries" example:"80"`
	Build         version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Clock.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	checks := []ReadyCheck{
		check(ctx, "pg", h.deps.PG),
		check(ctx, "ch", h.deps.CH),
		check(ctx, "kv", h.deps.KV),
	}

	return ReadyResponse{
		Status: Overall(checks),
		Checks: checks,
		Now:    h.deps.Clock.Now().UTC().Format(time.RFC3339),
	}, nil
}

func check(ctx stdctx.Context, name string, c any) ReadyCheck {
	if c == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	if p, ok := c.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}
	return ReadyCheck{Name: name, Status: "unknown"}
}

// Overall folds checks into ok, degraded or fail. Skipped stores are optional
func Overall(checks []ReadyCheck) string {
	overall := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			return "fail"
		case "unknown":
			overall = "degraded"
		}
	}
	return overall
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Clock.Since(h.deps.StartedAt)
	resp := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}
	if h.deps.Modules != nil {
		resp.Modules = h.deps.Modules()
	}
	return resp, nil
}

// swagger:route GET /meta/scorer Meta metaScorer
// @Summary Scoring mode and lexicon sizes
// @Tags Meta
// @Produce json
// @Success 200 type ScorerResponse ok
// @Router /meta/scorer [get]
func (h *handlers) scorer(_ *http.Request) (any, error) {
	resp := ScorerResponse{Build: version.Info()}
	if s := h.deps.Scorer; s != nil {
		resp.Mode = s.Mode()
		resp.PositiveWords, resp.NegativeWords = s.Lexicon().Sizes()
		resp.GlossEntries = s.GlossSize()
	}
	return resp, nil
}
