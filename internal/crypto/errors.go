package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the password does not
	// produce the stored hash.
	ErrPasswordMismatch = errors.New("password does not match hash")

	// ErrMalformedHash is returned by Compare when the stored value is not
	// a bcrypt hash.
	ErrMalformedHash = errors.New("malformed password hash")
)
