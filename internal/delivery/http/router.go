package http //nolint:revive // directory-based package name, imported with alias

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", h.HandleHealth)

	r.Route("/api/receive/{user_id}", func(r chi.Router) {
		r.Get("/", h.HandleReceive)
		r.Get("/share.png", h.HandleShareQR)
	})

	r.Get("/receive/{user_id}", h.HandlePage)

	return r
}
