package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const contactThanks = "Thank you! Your message has been received."

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.ContactMessageRepo
	notifier    services.Notifier
}

func newContactHandler(messageRepo *database.ContactMessageRepo, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// submitContact stores the message, then notifies the owner. A failed
// notification is logged and does not change the response.
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body contactRequest true "Contact message"
// @Success 201 {object} contactResponse
// @Failure 400 {object} ErrorResponse "Empty name, email or message"
// @Router /api/contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		msg := models.ContactMessage{
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.TrimSpace(req.Email),
			Message: strings.TrimSpace(req.Message),
		}
		if err := h.messageRepo.Add(r.Context(), &msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.notifier.Notify(r.Context(), msg.Name, msg.Email, msg.Message); err != nil {
			h.logger.Warn().Err(err).Int64("messageID", msg.ID).Msg("failed to send contact notification")
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, contactResponse{
			Message:   contactThanks,
			ID:        msg.ID,
			CreatedAt: msg.CreatedAt,
		})
	}
}

func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

func (h contactHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := pathID(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.messageRepo.Delete(r.Context(), messageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, "Message deleted")
	}
}
