package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"clearfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the crowdfund usecase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
//
// The caller's identity is read from the X-Identity header; who the
// caller actually is belongs to an authentication layer in front of this
// service.
type Handler struct {
	svc    port.CrowdfundUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// usecase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CrowdfundUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleLaunch)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleCancel)
			r.Post("/claim", h.handleClaim)
			r.Post("/pledges", h.handlePledge)
			r.Delete("/pledges", h.handleUnpledge)
			r.Post("/refund", h.handleRefund)
			r.Get("/pledges/{investor}", h.handleGetInvestment)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
