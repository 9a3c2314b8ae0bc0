package models

// RegisterResponse is returned by POST /users after a successful registration.
type RegisterResponse struct {
	// UserID is the identifier assigned to the new account.
	UserID int64 `json:"id"`
}

// ProtectedResponse is returned by GET /protected to an authenticated caller.
type ProtectedResponse struct {
	// Username is the subject of the bearer token presented with the request.
	Username string `json:"username"`
}
