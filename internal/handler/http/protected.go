package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// protected handles GET /protected and echoes the token subject back.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		log.Err(ErrEmptyAuthorizationHeader).Msg("no authenticated username in context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	if _, err := utils.WriteJSON(w, models.ProtectedResponse{Username: username}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing protected response")
	}
}
