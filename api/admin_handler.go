package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder     Responder
	logger        zerolog.Logger
	adminPassword string
}

func newAdminHandler(adminPassword string) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		adminPassword: adminPassword,
	}
}

// secretMatches compares in constant time. An unset secret matches nothing.
func secretMatches(secret, presented string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}

// login checks the admin password and hands it back as the bearer token
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin password"
// @Success 200 {object} loginResponse
// @Failure 401 {object} ErrorResponse "Invalid password"
// @Router /api/admin/login [post]
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidPasswordError())
			return
		}

		if !secretMatches(h.adminPassword, req.Password) {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login")
			h.responder.WriteError(w, errs.NewInvalidPasswordError())
			return
		}

		h.responder.WriteJSON(w, loginResponse{Message: "Authenticated", Token: h.adminPassword})
	}
}
