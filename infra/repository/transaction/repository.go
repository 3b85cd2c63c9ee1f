// Package transaction implements the transaction log on GORM/Postgres.
package transaction

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	repo "github.com/ksuvorov/bankledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

// sortColumns whitelists the admin listing sort fields and maps them onto
// columns. Anything else in a sort spec is dropped.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"type":       "type",
	"id":         "id",
}

type repository struct {
	db *gorm.DB
}

// New creates a transaction log repository using the provided *gorm.DB session.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	rec := Transaction{
		ID:            create.ID,
		ClientID:      create.ClientID,
		Amount:        int64(create.Amount),
		Type:          string(create.Type),
		Status:        string(create.Status),
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		CreatedAt:     create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

// ListByClient implements transaction.Repository.
func (r *repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.TransactionRead, error) {
	var recs []Transaction
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(recs), nil
}

// ListByAccount implements transaction.Repository. The account matches on
// either side of a record.
func (r *repository) ListByAccount(ctx context.Context, clientID, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	var recs []Transaction
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND (from_account_id = ? OR to_account_id = ?)",
			clientID, accountID, accountID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(recs), nil
}

// ListAll implements transaction.Repository.
func (r *repository) ListAll(ctx context.Context, sort dto.SortSpec) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).Model(&Transaction{})
	ordered := false
	for _, o := range sort {
		col, ok := sortColumns[o.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if strings.EqualFold(o.Direction, "desc") {
			dir = "DESC"
		}
		q = q.Order(col + " " + dir)
		ordered = true
	}
	if !ordered {
		q = q.Order("created_at ASC")
	}
	var recs []Transaction
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTOs(recs), nil
}

func mapModelsToDTOs(recs []Transaction) []*dto.TransactionRead {
	result := make([]*dto.TransactionRead, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		result = append(result, &dto.TransactionRead{
			ID:            rec.ID,
			ClientID:      rec.ClientID,
			Amount:        money.Amount(rec.Amount),
			Type:          domain.TransactionType(rec.Type),
			Status:        domain.TransactionStatus(rec.Status),
			FromAccountID: rec.FromAccountID,
			ToAccountID:   rec.ToAccountID,
			CreatedAt:     rec.CreatedAt,
		})
	}
	return result
}
