package models

import "github.com/rs/zerolog"

// Credentials is the transient username/password pair received on
// registration and login. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
// Only the username is written; the password never reaches the logs.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username)
}
