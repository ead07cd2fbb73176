package repository

import "errors"

var (
	// ErrNotFound is returned by every lookup that matches no record.
	ErrNotFound = errors.New("userdb: record not found")

	// ErrNoOAuthAccounts is returned by OAuth account operations on a
	// repository built without WithOAuthAccounts. It is a configuration
	// problem, not a missing record.
	ErrNoOAuthAccounts = errors.New("userdb: oauth accounts are not configured")
)
