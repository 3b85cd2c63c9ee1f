// Package account defines the data access contract for the account store.
package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
)

// Repository is the account store contract. The store exclusively owns balance
// and active-flag mutation; balance arithmetic is executed server-side so a
// caller can never read-modify-write a stale balance.
type Repository interface {
	// Create inserts a new account with a zero balance, active.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get retrieves an account by ID. Returns domain.ErrAccountNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// GetOwned retrieves an account by ID, verifying it belongs to clientID.
	// Returns domain.ErrAccountNotFound when absent or owned by someone else.
	GetOwned(ctx context.Context, clientID, id uuid.UUID) (*dto.AccountRead, error)

	// ListByClient lists all accounts of a client.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.AccountRead, error)

	// SetActive freezes or unfreezes an account.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Credit adds amount to the balance as a single server-side update.
	Credit(ctx context.Context, id uuid.UUID, amount money.Amount) error

	// Debit subtracts amount from the balance with a conditional server-side
	// update guarded by balance >= amount. Returns domain.ErrInsufficientFunds
	// when the guard rejects the update, so concurrent debits can never
	// lost-update a balance below zero.
	Debit(ctx context.Context, id uuid.UUID, amount money.Amount) error
}
