package service

import "errors"

// Error taxonomy surfaced to controllers. Anything else coming out of a
// service is a storage failure and maps to a plain 500.
var (
	// ErrNotFound covers both "does not exist" and "exists but owned by
	// someone else": callers must not be able to probe for other users'
	// record ids.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is used where the resource id was never secret.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidOperation marks a semantically disallowed request, such as
	// moving a transaction to a different wallet via update.
	ErrInvalidOperation = errors.New("operation not allowed")

	// ErrInconsistentState marks a broken referential invariant, such as a
	// live transaction whose wallet is gone. Fatal for the request.
	ErrInconsistentState = errors.New("inconsistent state")
)
