package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// register handles POST /users.
//
// On success it answers 201 with {"id": <user id>}.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Object("credentials", creds).Msg("registration failed")
		return
	}

	if _, err = utils.WriteJSON(w, models.RegisterResponse{UserID: registeredUser.UserID}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing registration response")
	}
}

// login handles POST /users/auth.
//
// On success it answers 201 with the signed token as a text/plain body and
// repeats it in the "Authorization: Bearer" header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Object("credentials", creds).Msg("login failed")
		return
	}

	token, err := h.services.TokenService.IssueToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteText(w, token.SignedString, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing token")
	}
}

// decodeCredentials reads a single JSON object from the request body.
// Anything else, including trailing data, yields ErrMalformedBody.
func decodeCredentials(r *http.Request) (models.Credentials, error) {
	if r.Body == nil {
		return models.Credentials{}, ErrMalformedBody
	}

	var raw json.RawMessage
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&raw); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if decoder.More() {
		return models.Credentials{}, fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedBody)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return models.Credentials{}, fmt.Errorf("%w: body is not a JSON object", ErrMalformedBody)
	}

	var creds models.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return creds, nil
}
