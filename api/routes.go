package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public API and the bearer-protected admin API.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.healthHandler.health())

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/tags", handlers.tagHandler.listTags())
		r.Get("/posts", handlers.postHandler.listPublishedPosts())
		r.Get("/posts/{slug}", handlers.postHandler.getPostBySlug())
		r.Post("/contact", handlers.contactHandler.submitContact())

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.adminHandler.login())

			r.Group(func(r chi.Router) {
				r.Use(auth.authenticate)

				r.Get("/projects", handlers.projectHandler.listAllProjects())
				r.Post("/projects", handlers.projectHandler.createProject())
				r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

				r.Post("/tags", handlers.tagHandler.createTag())

				r.Get("/posts", handlers.postHandler.listAllPosts())
				r.Post("/posts", handlers.postHandler.createPost())
				r.Put("/posts/{postID}", handlers.postHandler.updatePost())
				r.Delete("/posts/{postID}", handlers.postHandler.deletePost())

				r.Get("/messages", handlers.contactHandler.listMessages())
				r.Delete("/messages/{messageID}", handlers.contactHandler.deleteMessage())

				r.Post("/upload", handlers.uploadHandler.uploadImage())
			})
		})
	})
}

// setupUploadRoutes serves files written by the local storage backend.
func setupUploadRoutes(r chi.Router, dir string) {
	r.Get("/uploads/{filename}", serveUpload(dir))
}
