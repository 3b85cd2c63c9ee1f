// Package transaction defines the data access contract for the transaction log.
package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/dto"
)

// Repository is the append-only transaction log contract. Records are created
// exactly once as the last step of a successful ledger operation; there is no
// update or delete. Validation is the ledger engine's responsibility, not the
// log's.
type Repository interface {
	// Create appends an immutable record.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// ListByClient lists all records owned by a client.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListByAccount lists the client's records where the account appears on
	// either side. An empty result is a valid answer.
	ListByAccount(ctx context.Context, clientID, accountID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListAll lists every record, ordered by the sort spec. Fields outside
	// {createdAt, type, id} are silently dropped; the default order is
	// created_at ascending.
	ListAll(ctx context.Context, sort dto.SortSpec) ([]*dto.TransactionRead, error)
}
