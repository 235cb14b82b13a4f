// Package http provides http transport for trust analysis
package http

import (
	stdhttp "net/http"

	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/services/api/trust/domain"
)

// Register mounts trust endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// score one listing
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)

	// stored analyses of one listing
	httpkit.PostJSON[domain.HistoryQuery](r, "/history", h.history)

	httpkit.Get(r, "/defaults", h.defaults)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /trust/analyze Trust trustAnalyze
// @Summary Detect review manipulation patterns and compute a trust score
// @Tags Trust
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Dataset and optional settings"
// @Success 200 {object} domain.AnalyzeOutput "ok"
// @Router /trust/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// swagger:route POST /trust/history Trust trustHistory
// @Summary Stored analyses of a place, newest first
// @Tags Trust
// @Accept json
// @Produce json
// @Param payload body domain.HistoryQuery true "Query"
// @Success 200 {object} domain.HistoryOutput "ok"
// @Failure 503 {object} httpkit.Envelope "history disabled"
// @Router /trust/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryQuery) (any, error) {
	return h.svc.History(r.Context(), in)
}

// swagger:route GET /trust/defaults Trust trustDefaults
// @Summary Effective default settings and algorithm version
// @Tags Trust
// @Produce json
// @Success 200 {object} domain.DefaultsOutput "ok"
// @Router /trust/defaults [get]
func (h *handlers) defaults(r *stdhttp.Request) (any, error) {
	return h.svc.Defaults(r.Context()), nil
}
