package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg config.Config, storer services.Storer, notifier services.Notifier, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:  newHealthHandler(startupTime),
		projectHandler: newProjectHandler(db.ProjectRepo()),
		tagHandler:     newTagHandler(db.TagRepo()),
		postHandler:    newPostHandler(db.PostRepo()),
		contactHandler: newContactHandler(db.ContactMessageRepo(), notifier),
		adminHandler:   newAdminHandler(cfg.AdminPassword),
		uploadHandler:  newUploadHandler(storer, cfg.Storage.MaxUploadBytes),
	}
}
