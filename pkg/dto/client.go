package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/domain"
)

// ClientCreate carries the fields needed to register a client.
type ClientCreate struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         domain.Role
}

// ClientRead is the read-side projection of a client. PasswordHash is needed
// by the login path and never serialized.
type ClientRead struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         domain.Role `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
}
