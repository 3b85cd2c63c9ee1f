// Package dto defines the data transfer objects exchanged between services,
// repositories and the web layer. Write DTOs carry exactly the fields a create
// or update touches; read DTOs are the query-side projections.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/money"
)

// AccountCreate carries the fields needed to open an account.
// New accounts always start with a zero balance and active.
type AccountCreate struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Name     string
}

// AccountRead is the read-side projection of an account.
type AccountRead struct {
	ID        uuid.UUID    `json:"id"`
	ClientID  uuid.UUID    `json:"clientId"`
	Name      string       `json:"name"`
	Balance   money.Amount `json:"balance"`
	Active    bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
}
