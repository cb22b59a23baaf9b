package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSyncInProgress indicates a sync is already running.
	ErrSyncInProgress = errors.New("sync in progress")

	// ErrNoLinkedAccounts indicates none of the given accounts carry a link
	// identifier, so there is nothing to sync. It is reported to the user,
	// never treated as a failure of the run.
	ErrNoLinkedAccounts = errors.New("no linked accounts")

	// Provider Errors.

	// ErrProviderUnavailable indicates the aggregation provider is not configured.
	ErrProviderUnavailable = errors.New("aggregation provider unavailable")

	// ErrAuthRequired indicates the provider rejected the request for lack of credentials.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRateLimited indicates the provider refused the request due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)
