// Package http implements the REST surface of the auth service.
//
// It wires the chi router, the request handlers for registration, login and
// the protected resource, and the middleware for bearer-token
// authentication, trace identifiers, access logging and request budgets.
// Service errors are turned into status codes and fixed messages in one
// place, see errors_mapper.go.
package http
