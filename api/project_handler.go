package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// listProjects returns projects newest first
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param featured query bool false "Only featured projects"
// @Success 200 {array} models.Project
// @Failure 500 {object} ErrorResponse
// @Router /api/projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featuredOnly := strings.EqualFold(r.URL.Query().Get("featured"), "true")

		projects, err := h.projectRepo.FindAll(r.Context(), featuredOnly)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// listAllProjects is the admin view; featured and non-featured alike.
func (h projectHandler) listAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context(), false)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject returns one project with its tags
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.ProjectDetail
// @Failure 400 {object} ErrorResponse "Invalid projectID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (req projectRequest) toModel() models.Project {
	return models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TechStack:   req.TechStack,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	}
}

// createProject inserts a project and links its tags in one transaction
// @Summary Create project
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body projectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse "Missing title or unknown tag"
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := req.toModel()
		if err := h.projectRepo.Add(r.Context(), &project, req.TagIDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("projectID", project.ID).Int("tags", len(req.TagIDs)).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject replaces every column; tag links are replaced only when
// tag_ids is present in the body.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := req.toModel()
		project.ID = projectID
		if err := h.projectRepo.Update(r.Context(), &project, req.TagIDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("projectID", projectID).Msg("project deleted")
		h.responder.WriteMessage(w, "Project deleted")
	}
}
