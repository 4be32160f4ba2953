// Package v1handler implements the v1 HTTP API: claim verification on behalf
// of an authenticated user.
package v1handler

import (
	"net/http"

	"orgdomain/internal/verification"
)

type Deps struct {
	Verifier verification.Command
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux. Every route requires a bearer token.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.Handle("POST /v1/domains/{id}/verify", sec.Middleware(http.HandlerFunc(h.VerifyDomain)))
}
