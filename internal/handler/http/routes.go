package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// every route operates on the authenticated user's own data
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/vault/", h.getVault)
		r.Put("/api/vault/", h.putVault)
		r.Post("/api/vault/rotate", h.rotateVault)

		r.Get("/api/share-tokens/", h.listShareGrants)
		r.Get("/api/share-tokens/affected", h.affectedShareTokens)
		r.Post("/api/share-tokens/invalidate", h.invalidateShareTokens)
		r.Post("/api/share-tokens/", h.createShareGrant)
	})

	return router
}
