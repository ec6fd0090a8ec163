package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public site API and the admin-gated editing routes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.adminHandler.health())

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", handlers.adminHandler.status())
		r.Post("/admin/login", handlers.adminHandler.login())
		r.Post("/newsletter", handlers.newsletterHandler.subscribe())

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.identifyAdmin)

			r.Get("/blog", handlers.blogPostHandler.listBlogPosts())
			r.Get("/blog/slug/{slug}", handlers.blogPostHandler.getBlogPostBySlug())
			r.Get("/blog/{id}", handlers.blogPostHandler.getBlogPost())
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/blog", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog/{id}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog/{id}", handlers.blogPostHandler.deleteBlogPost())
			r.Post("/upload", handlers.uploadHandler.uploadImage())
		})
	})
}
