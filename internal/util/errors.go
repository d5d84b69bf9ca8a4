// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	// ErrNotFound covers any referenced wallet, bucket, category, earning,
	// expense or movement that is missing or not owned by the caller.
	ErrNotFound = errors.New("resource not found")
	// ErrPreconditionFailed is raised when an earning is recorded or edited
	// while the user has no buckets, or the bucket budgets do not sum to 100.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrBadRequest covers structurally invalid commands, e.g. a movement
	// whose source and target wallets are the same.
	ErrBadRequest = errors.New("bad request")
	// ErrInvalidInput covers malformed payloads rejected before validation.
	ErrInvalidInput = errors.New("invalid input provided")
	// ErrUnauthorized is returned when no authenticated user id accompanies
	// the request.
	ErrUnauthorized = errors.New("unauthorized")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
