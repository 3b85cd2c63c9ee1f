package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the GORM model backing the accounts table. Column defaults live
// in the migrations; the repository sets every field explicitly on insert.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"size:255;not null"`
	Balance   int64     `gorm:"not null"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
