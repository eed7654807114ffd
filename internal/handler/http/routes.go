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

	router.Get("/", h.root)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withDBSession)

		r.Post("/login", h.login)
		r.Post("/users", h.register)

		r.Get("/users/{id}", h.getUser)
		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)
	})

	// routes that require a bearer token. The database session is acquired
	// before the token check, so an unavailable database answers 500 no
	// matter what credentials the request carries; teardown unwinds in
	// reverse.
	router.Group(func(r chi.Router) {
		r.Use(h.withDBSession)
		r.Use(h.auth)

		r.Post("/posts", h.createPost)
		r.Put("/posts/{id}", h.replacePost)
		r.Patch("/posts/{id}", h.patchPost)
		r.Delete("/posts/{id}", h.deletePost)

		r.Post("/posts/{id}/votes", h.castVote)
		r.Delete("/posts/{id}/votes", h.retractVote)
	})

	return router
}
