package store

import (
	"context"
	"database/sql/driver"
	"errors"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a lock conflict).
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// classifyCommon holds the rules shared by every backend. The second result
// is false when the backend classifier has to decide.
func classifyCommon(err error) (ErrorClassification, bool) {
	switch {
	case err == nil:
		return NonRetryable, true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		// the caller's budget is gone, another attempt cannot fit in it
		return NonRetryable, true
	case errors.Is(err, driver.ErrBadConn):
		return Retryable, true
	}
	return NonRetryable, false
}
