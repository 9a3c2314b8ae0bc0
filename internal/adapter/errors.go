package adapter

import "errors"

// Errors returned for non-2xx responses, one per status the server uses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessableEntity = errors.New("request rejected")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("server timed out")
)

var (
	ErrEmptyAddress    = errors.New("empty address")
	ErrNoToken         = errors.New("no token, log in first")
	ErrMissingToken    = errors.New("server response carries no token")
	ErrUnexpectedReply = errors.New("unexpected server response")
)
