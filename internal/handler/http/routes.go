package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})

	return router
}
