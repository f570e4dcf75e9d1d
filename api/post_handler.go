package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
}

func newPostHandler(postRepo *database.PostRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
	}
}

// listPublishedPosts returns published posts without their content
// @Summary List published posts
// @Tags Posts
// @Produce json
// @Success 200 {array} models.PostSummary
// @Router /api/posts [get]
func (h postHandler) listPublishedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindPublished(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

func (h postHandler) listAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

// getPostBySlug returns a published post
// @Summary Get post
// @Tags Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post
// @Failure 404 {object} ErrorResponse "Post not found or not published"
// @Router /api/posts/{slug} [get]
func (h postHandler) getPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.postRepo.FindPublishedBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (req postRequest) toModel() models.Post {
	return models.Post{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Slug:      strings.TrimSpace(req.Slug),
		Published: req.Published,
	}
}

// createPost inserts a post; the slug defaults to the lowercased, hyphenated title
// @Summary Create post
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body postRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} ErrorResponse "Missing title or content"
// @Router /api/admin/posts [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := req.toModel()
		if err := h.postRepo.Add(r.Context(), &post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("postID", post.ID).Str("slug", post.Slug).Msg("post created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req postRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := req.toModel()
		post.ID = postID
		if err := h.postRepo.Update(r.Context(), &post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.postRepo.Delete(r.Context(), postID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, "Post deleted")
	}
}
