package models

import "time"

// User is the persisted credential record of an account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the identifier assigned by the store on insert.
	UserID int64 `json:"id"`

	// Username is the unique account name. Immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the salted bcrypt hash of the password.
	// It is never the plaintext and is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the record was inserted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
