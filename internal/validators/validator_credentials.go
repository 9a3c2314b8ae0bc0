package validators

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldPasswordHash = "password_hash"
)

const (
	// MaxUsernameLength is the longest accepted username in bytes.
	MaxUsernameLength = 64
	// MaxPasswordLength is the longest password bcrypt can hash; longer
	// input would be rejected by bcrypt.GenerateFromPassword.
	MaxPasswordLength = 72
)

// CredentialsValidator checks usernames and passwords before they reach
// the hasher or the store.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts [models.Credentials] and [models.User] (or pointers to
// them). With no fields given every field of the value is checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(creds.Username); err != nil {
				return err
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser checks a record about to be persisted.
func (v *CredentialsValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPasswordHash}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(user.Username); err != nil {
				return err
			}
		case FieldPasswordHash:
			if user.PasswordHash == "" {
				return ErrEmptyPasswordHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}
