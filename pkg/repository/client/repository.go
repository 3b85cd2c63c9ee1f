// Package client defines the data access contract for client records.
package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/dto"
)

// Repository is the client store contract.
type Repository interface {
	// Create inserts a new client.
	Create(ctx context.Context, create dto.ClientCreate) error

	// Get retrieves a client by ID. Returns domain.ErrClientNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error)

	// GetByEmail retrieves a client by email. Returns domain.ErrClientNotFound
	// when absent.
	GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error)
}
