// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	"github.com/ksuvorov/bankledger/pkg/repository"
	repoaccount "github.com/ksuvorov/bankledger/pkg/repository/account"
	repoclient "github.com/ksuvorov/bankledger/pkg/repository/client"
	repotransaction "github.com/ksuvorov/bankledger/pkg/repository/transaction"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork mocks repository.UnitOfWork. Do runs fn against the mock itself,
// so a test wires repository expectations once and every operation sees them.
type UnitOfWork struct {
	mock.Mock
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

func (m *UnitOfWork) Accounts() repoaccount.Repository {
	return m.Called().Get(0).(repoaccount.Repository)
}

func (m *UnitOfWork) Transactions() repotransaction.Repository {
	return m.Called().Get(0).(repotransaction.Repository)
}

func (m *UnitOfWork) Clients() repoclient.Repository {
	return m.Called().Get(0).(repoclient.Repository)
}

// AccountRepository mocks account.Repository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountRead), args.Error(1)
}

func (m *AccountRepository) GetOwned(ctx context.Context, clientID, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, clientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountRead), args.Error(1)
}

func (m *AccountRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.AccountRead), args.Error(1)
}

func (m *AccountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *AccountRepository) Credit(ctx context.Context, id uuid.UUID, amount money.Amount) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *AccountRepository) Debit(ctx context.Context, id uuid.UUID, amount money.Amount) error {
	return m.Called(ctx, id, amount).Error(0)
}

// TransactionRepository mocks transaction.Repository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *TransactionRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.TransactionRead), args.Error(1)
}

func (m *TransactionRepository) ListByAccount(ctx context.Context, clientID, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, clientID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.TransactionRead), args.Error(1)
}

func (m *TransactionRepository) ListAll(ctx context.Context, sort dto.SortSpec) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.TransactionRead), args.Error(1)
}

// ClientRepository mocks client.Repository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Create(ctx context.Context, create dto.ClientCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClientRead), args.Error(1)
}

func (m *ClientRepository) GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClientRead), args.Error(1)
}
