// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the fixed response messages shared by the HTTP
// handlers and middleware of the auth service.
//
// Error bodies are taken only from this list so that responses never carry
// internal error text. Messages for credential and token failures are
// deliberately coarse: one message covers unknown usernames and wrong
// passwords, another covers every kind of rejected token.
package app

const (
	// MsgMalformedBody is returned when the request body is not a JSON
	// object with username and password.
	MsgMalformedBody = "malformed request body"

	// MsgInvalidInput is returned when the username or password is empty
	// or longer than allowed.
	MsgInvalidInput = "username and password must be non-empty and within length limits"

	// MsgUsernameTaken is returned when registering a username that already
	// exists.
	MsgUsernameTaken = "username is already taken"

	// MsgInvalidCredentials is returned for every failed login caused by
	// the supplied username or password.
	MsgInvalidCredentials = "invalid username or password"

	// MsgUnauthorized is returned for a missing, malformed, forged or
	// expired bearer token.
	MsgUnauthorized = "unauthorized"

	// MsgInternalServerError is returned for storage and signing failures.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimeout is returned when the request budget ran out.
	MsgRequestTimeout = "request timed out"
)
