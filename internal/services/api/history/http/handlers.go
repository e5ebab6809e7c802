// Package http provides http transport for history
package http

import (
	stdhttp "net/http"

	"sentilex/internal/modkit/httpkit"
	"sentilex/internal/services/api/history/domain"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// newest first, bounded by the repo capacity
	httpkit.Get(r, "/history", h.list)

	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /history History historyList
// @Summary Recent analyses
// @Tags History
// @Produce json
// @Success 200 {array} domain.ListItem "ok"
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route GET /stats History historyStats
// @Summary Aggregates over recent analyses
// @Tags History
// @Produce json
// @Success 200 {object} domain.Stats "ok"
// @Router /stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context())
}
