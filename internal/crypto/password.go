// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt [PasswordHasher] working at the given
// cost. Costs outside bcrypt.MinCost..bcrypt.MaxCost are rejected.
func NewPasswordHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, bcrypt.InvalidCostError(cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

type hashResult struct {
	hash []byte
	err  error
}

func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	res, err := runWithContext(ctx, func() hashResult {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		return hashResult{hash: hash, err: err}
	})
	if err != nil {
		return "", err
	}
	if res.err != nil {
		return "", fmt.Errorf("error hashing password: %w", res.err)
	}

	return string(res.hash), nil
}

func (h *bcryptHasher) Compare(ctx context.Context, hash, password string) error {
	res, err := runWithContext(ctx, func() hashResult {
		return hashResult{err: bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))}
	})
	if err != nil {
		return err
	}

	switch {
	case res.err == nil:
		return nil
	case errors.Is(res.err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %w", ErrMalformedHash, res.err)
	}
}

// runWithContext runs fn in its own goroutine and waits for it or for ctx,
// whichever comes first. bcrypt cannot be interrupted, so an abandoned fn
// still runs to completion in the background.
func runWithContext(ctx context.Context, fn func() hashResult) (hashResult, error) {
	if err := ctx.Err(); err != nil {
		return hashResult{}, err
	}

	done := make(chan hashResult, 1)
	go func() {
		done <- fn()
	}()

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	}
}
