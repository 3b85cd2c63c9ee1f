package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is the GORM model backing the clients table.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Password  string    `gorm:"not null;size:255"`
	Role      string    `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Client model.
func (Client) TableName() string {
	return "clients"
}
