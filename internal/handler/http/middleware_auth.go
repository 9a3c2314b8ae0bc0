package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
)

// auth is an HTTP middleware that admits only requests with a valid
// "Authorization: Bearer <token>" header.
//
// The verified subject is stored in the request context under
// [utils.UsernameCtxKey]. A missing header, a header of another scheme and
// every token verification failure end in the same 401 response; the
// precise reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeError(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from an "Authorization"
// header value such as
//
//	Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}
