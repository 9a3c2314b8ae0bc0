// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the auth service REST API.
//
// [ServerAdapter] hides the transport from the command-line client. Error
// responses are mapped from HTTP status codes to the sentinel errors in
// errors.go so that callers can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running auth service.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to Protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if there is none.
	Token() string

	// Register creates an account and returns its id.
	Register(ctx context.Context, creds models.Credentials) (int64, error)

	// Login authenticates creds. On success the issued token is stored via
	// SetToken and returned.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Protected calls the protected resource with the stored token and
	// returns the username the server resolved from it.
	Protected(ctx context.Context) (string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
