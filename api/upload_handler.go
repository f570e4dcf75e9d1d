package api

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const multipartMemory = 8 << 20

type uploadHandler struct {
	responder      Responder
	logger         zerolog.Logger
	storer         services.Storer
	maxUploadBytes int64
}

func newUploadHandler(storer services.Storer, maxUploadBytes int64) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		storer:         storer,
		maxUploadBytes: maxUploadBytes,
	}
}

// uploadImage stores the multipart "file" field and returns its URL
// @Summary Upload image
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 201 {object} uploadResponse
// @Failure 400 {object} ErrorResponse "No file provided"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Upload failed"
// @Router /api/admin/upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxErr.Limit))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("no file provided"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no file provided"))
			return
		}
		defer file.Close()

		if header.Filename == "" || header.Size == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no file selected"))
			return
		}

		url, err := h.storer.Store(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			if !errs.IsUploadFailedError(err) {
				err = errs.NewUploadFailedError(err)
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("url", url).Int64("size", header.Size).Msg("image uploaded")
		h.responder.WriteJSONStatus(w, http.StatusCreated, uploadResponse{URL: url})
	}
}

// serveUpload serves a locally stored upload by name. Anything that is not a
// plain stored filename is reported as missing.
func serveUpload(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")
		if name == "" || services.SecureFilename(name) != name {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
