package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/money"
)

// TransactionCreate carries one append-only ledger record. Amount is always
// positive; direction is conveyed by Type and the account references.
type TransactionCreate struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	Amount        money.Amount
	Type          domain.TransactionType
	Status        domain.TransactionStatus
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	CreatedAt     time.Time
}

// TransactionRead is the read-side projection of a ledger record.
type TransactionRead struct {
	ID            uuid.UUID                `json:"id"`
	ClientID      uuid.UUID                `json:"clientId"`
	Amount        money.Amount             `json:"amount"`
	Type          domain.TransactionType   `json:"type"`
	Status        domain.TransactionStatus `json:"status"`
	FromAccountID *uuid.UUID               `json:"fromAccountId,omitempty"`
	ToAccountID   *uuid.UUID               `json:"toAccountId,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// SortOrder is one (field, direction) pair of an admin listing sort spec.
type SortOrder struct {
	Field     string
	Direction string
}

// SortSpec is an ordered list of sort pairs. Fields outside
// {createdAt, type, id} are dropped by the repository; when nothing remains
// the listing defaults to createdAt ascending.
type SortSpec []SortOrder
