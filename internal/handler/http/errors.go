// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the auth middleware. They are logged but never sent to the
// client, which always receives the same 401 message.
var (
	// ErrEmptyAuthorizationHeader means the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMalformedBody means the request body is not a JSON credentials
	// object.
	ErrMalformedBody = errors.New("malformed request body")
)
