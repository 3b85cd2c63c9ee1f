// Package account implements the account store on GORM/Postgres.
package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	repo "github.com/ksuvorov/bankledger/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB session.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := Account{
		ID:       create.ID,
		ClientID: create.ClientID,
		Name:     create.Name,
		Balance:  0,
		Active:   true,
	}
	return r.db.WithContext(ctx).Create(&acct).Error
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// GetOwned implements account.Repository.
func (r *repository) GetOwned(ctx context.Context, clientID, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	err := r.db.WithContext(ctx).First(&acct, "id = ? AND client_id = ?", id, clientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// ListByClient implements account.Repository.
func (r *repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&accts).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// SetActive implements account.Repository.
func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Credit implements account.Repository. The increment runs server-side so
// concurrent credits serialize on the row.
func (r *repository) Credit(ctx context.Context, id uuid.UUID, amount money.Amount) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", int64(amount)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Debit implements account.Repository. The balance guard is part of the
// UPDATE itself: of N concurrent debits, only those the guard admits succeed.
// Existence has been verified earlier in the same transaction, so zero
// affected rows means the guard rejected the debit.
func (r *repository) Debit(ctx context.Context, id uuid.UUID, amount money.Amount) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ? AND balance >= ?", id, int64(amount)).
		UpdateColumn("balance", gorm.Expr("balance - ?", int64(amount)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		ClientID:  acct.ClientID,
		Name:      acct.Name,
		Balance:   money.Amount(acct.Balance),
		Active:    acct.Active,
		CreatedAt: acct.CreatedAt,
	}
}
