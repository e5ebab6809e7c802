// Package http provides http transport for analyze
package http

import (
	stdhttp "net/http"

	"sentilex/internal/modkit/httpkit"
	"sentilex/internal/services/api/analyze/domain"
)

// Register mounts the analyze endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
	httpkit.PostJSON[domain.BatchInput](r, "/batch-analyze", h.batch)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /analyze Analyze analyze
// @Summary Score one text and record it
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Text"
// @Success 200 {object} domain.AnalyzeOutput "ok"
// @Failure 400 {object} httpkit.Envelope "invalid text"
// @Failure 429 {object} httpkit.Envelope "too many requests"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// swagger:route POST /batch-analyze Analyze batchAnalyze
// @Summary Score up to ten texts without recording them
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Texts"
// @Success 200 {array} domain.BatchItem "ok"
// @Failure 400 {object} httpkit.Envelope "invalid texts"
// @Router /batch-analyze [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}
