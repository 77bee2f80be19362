// Package http provides http transport for correct
package http

import (
	stdhttp "net/http"

	"redpen/internal/modkit/httpkit"
	"redpen/internal/services/api/correct/domain"
	svc "redpen/internal/services/api/correct/service"
)

// Register mounts correct endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CorrectionInput](r, "/", h.correct)
	httpkit.PostJSON[domain.CorrectionInput](r, "/detailed", h.detailed)
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
	httpkit.Post(r, "/session", h.session)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /correct Correct correctBasic
// @Summary Correct Korean text
// @Tags Correct
// @Accept json
// @Produce json
// @Param payload body domain.CorrectionInput true "Text and mode"
// @Success 200 {object} domain.CorrectionResult "ok"
// @Router /correct [post]
func (h *handlers) correct(r *stdhttp.Request, in domain.CorrectionInput) (any, error) {
	return h.svc.Correct(r.Context(), in)
}

// swagger:route POST /correct/detailed Correct correctDetailed
// @Summary Correct Korean text with highlighted segments
// @Tags Correct
// @Accept json
// @Produce json
// @Param payload body domain.CorrectionInput true "Text and mode"
// @Success 200 {object} domain.DetailedResult "ok"
// @Router /correct/detailed [post]
func (h *handlers) detailed(r *stdhttp.Request, in domain.CorrectionInput) (any, error) {
	return h.svc.CorrectDetailed(r.Context(), in)
}

// swagger:route POST /correct/analyze Correct correctAnalyze
// @Summary Report issues without rewriting
// @Tags Correct
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Text"
// @Success 200 {object} domain.AnalysisResult "ok"
// @Router /correct/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// swagger:route POST /correct/session Correct correctSession
// @Summary Open a correction session
// @Tags Correct
// @Produce json
// @Success 200 {object} domain.SessionInfo "ok"
// @Router /correct/session [post]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	return h.svc.OpenSession(r.Context())
}
