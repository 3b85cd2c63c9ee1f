package domain

import "errors"

var (
	// ErrAccountNotFound is returned when an account does not exist or does not
	// belong to the requesting client. Lookups fail fast instead of reporting a
	// boolean miss.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountBlocked is returned when an operation touches a frozen account.
	ErrAccountBlocked = errors.New("account blocked")

	// ErrInsufficientFunds is returned when a debit would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotSameClient is returned when a same-client transfer references an
	// account that does not belong to the caller.
	ErrNotSameClient = errors.New("accounts do not belong to the same client")

	// ErrClientNotFound is returned when a client lookup misses.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientExists is returned on registration with an already used email.
	ErrClientExists = errors.New("client already exists")

	// ErrUnauthorized is returned on bad credentials or a missing/invalid principal.
	ErrUnauthorized = errors.New("unauthorized")
)
