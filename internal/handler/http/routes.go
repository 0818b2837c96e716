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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)

		r.Get("/api/artworks", h.listArtworks)
		r.Get("/api/artworks/{id}", h.getArtwork)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.profile)
		r.Put("/api/users/profile", h.updateProfile)

		r.Post("/api/artworks", h.createArtwork)
		r.Post("/api/artworks/{id}/sell", h.sellArtwork)
		r.Post("/api/artworks/{id}/buy", h.buyArtwork)
		r.Post("/api/artworks/{id}/like", h.likeArtwork)
		r.Post("/api/artworks/{id}/comments", h.commentArtwork)
	})

	return router
}
