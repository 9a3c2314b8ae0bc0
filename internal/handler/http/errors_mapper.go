package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-auth/internal/app"
	"github.com/MKhiriev/go-pass-auth/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrMalformedBody:              {http.StatusBadRequest, app.MsgMalformedBody},
	service.ErrInvalidInput:       {http.StatusUnprocessableEntity, app.MsgInvalidInput},
	service.ErrDuplicateUsername:  {http.StatusUnprocessableEntity, app.MsgUsernameTaken},
	service.ErrInvalidCredentials: {http.StatusUnprocessableEntity, app.MsgInvalidCredentials},
	service.ErrMalformedToken:     {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrBadSignature:       {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrTokenExpired:       {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrStorageUnavailable: {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrSigningFailure:     {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrTimeout:            {http.StatusGatewayTimeout, app.MsgRequestTimeout},
	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgUnauthorized},
}

// responseFromError returns the status and client-facing message for err.
// Unknown errors become 500 with the generic message.
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) int {
	status, message := responseFromError(err)
	http.Error(w, message, status)
	return status
}
