package service

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

// AuthService registers accounts and checks passwords.
type AuthService interface {
	// RegisterUser validates creds, hashes the password and stores a new
	// credential record.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login returns the record whose username and password match creds.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// VerifyToken checks tokenString and returns its claims. Failures are
	// exactly one of ErrMalformedToken, ErrBadSignature or ErrTokenExpired.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
