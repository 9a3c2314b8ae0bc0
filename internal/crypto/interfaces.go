package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into salted, deliberately slow hashes and
// checks passwords against them. It knows nothing about users or storage.
//
// Both methods honor ctx: when it ends before the hash function returns,
// the call fails with the context error and the result is discarded.
type PasswordHasher interface {
	// Hash returns a self-describing hash of password (algorithm, cost and
	// salt are encoded in it). Two calls with the same password return
	// different hashes.
	Hash(ctx context.Context, password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] when it does not.
	Compare(ctx context.Context, hash, password string) error
}
