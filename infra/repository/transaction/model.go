package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the GORM model backing the transactions table. Rows are
// append-only; there is no update path.
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount        int64     `gorm:"not null"`
	Type          string    `gorm:"type:varchar(16);not null"`
	Status        string    `gorm:"type:varchar(16);not null"`
	FromAccountID *uuid.UUID `gorm:"type:uuid;index"`
	ToAccountID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
