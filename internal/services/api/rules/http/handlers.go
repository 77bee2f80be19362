// Package http provides http transport for rules
package http

import (
	stdhttp "net/http"

	"redpen/internal/modkit/httpkit"
	svc "redpen/internal/services/api/rules/service"
)

// Register mounts rules endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.info)
	httpkit.Get(r, "/spelling", h.spelling)
	httpkit.Get(r, "/spacing", h.spacing)
	httpkit.Get(r, "/punctuation", h.punctuation)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /rules Rules rulesInfo
// @Summary Rule pack version and counts
// @Tags Rules
// @Produce json
// @Success 200 {object} domain.PackInfo "ok"
// @Router /rules [get]
func (h *handlers) info(r *stdhttp.Request) (any, error) {
	return h.svc.Info(r.Context())
}

// swagger:route GET /rules/spelling Rules rulesSpelling
// @Summary Literal spelling pairs
// @Tags Rules
// @Produce json
// @Success 200 {array} domain.SpellingRule "ok"
// @Router /rules/spelling [get]
func (h *handlers) spelling(r *stdhttp.Request) (any, error) {
	return h.svc.Spelling(r.Context())
}

// swagger:route GET /rules/spacing Rules rulesSpacing
// @Summary Spacing pattern rules
// @Tags Rules
// @Produce json
// @Success 200 {array} domain.PatternRule "ok"
// @Router /rules/spacing [get]
func (h *handlers) spacing(r *stdhttp.Request) (any, error) {
	return h.svc.Spacing(r.Context())
}

// swagger:route GET /rules/punctuation Rules rulesPunctuation
// @Summary Punctuation pattern rules
// @Tags Rules
// @Produce json
// @Success 200 {array} domain.PatternRule "ok"
// @Router /rules/punctuation [get]
func (h *handlers) punctuation(r *stdhttp.Request) (any, error) {
	return h.svc.Punctuation(r.Context())
}
