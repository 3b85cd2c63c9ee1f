package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/internal/fixtures/mocks"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	"github.com/ksuvorov/bankledger/pkg/service/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*account.Service, *mocks.AccountRepository) {
	t.Helper()
	uow := new(mocks.UnitOfWork)
	accounts := new(mocks.AccountRepository)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	uow.On("Accounts").Return(accounts)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.New(uow, logger), accounts
}

func TestCreateAccount(t *testing.T) {
	svc, accounts := newService(t)
	clientID := uuid.New()

	accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
		return c.ClientID == clientID && c.Name == "checking" && c.ID != uuid.Nil
	})).Return(nil)
	accounts.On("Get", mock.Anything, mock.Anything).Return(&dto.AccountRead{
		ID:       uuid.New(),
		ClientID: clientID,
		Name:     "checking",
		Balance:  0,
		Active:   true,
	}, nil)

	acct, err := svc.CreateAccount(context.Background(), clientID, "checking")
	require.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, money.Amount(0), acct.Balance)
	assert.True(t, acct.Active)
	accounts.AssertExpectations(t)
}

func TestCreateAccount_StoreError(t *testing.T) {
	svc, accounts := newService(t)
	storeErr := errors.New("insert failed")

	accounts.On("Create", mock.Anything, mock.Anything).Return(storeErr)

	acct, err := svc.CreateAccount(context.Background(), uuid.New(), "checking")
	require.ErrorIs(t, err, storeErr)
	assert.Nil(t, acct)
}

func TestGetBalance(t *testing.T) {
	svc, accounts := newService(t)
	clientID := uuid.New()
	accountID := uuid.New()

	accounts.On("GetOwned", mock.Anything, clientID, accountID).Return(&dto.AccountRead{
		ID:       accountID,
		ClientID: clientID,
		Balance:  12345,
		Active:   true,
	}, nil)

	balance, err := svc.GetBalance(context.Background(), clientID, accountID)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(12345), balance)
}

func TestGetBalance_ForeignAccount(t *testing.T) {
	svc, accounts := newService(t)
	clientID := uuid.New()
	accountID := uuid.New()

	accounts.On("GetOwned", mock.Anything, clientID, accountID).
		Return(nil, domain.ErrAccountNotFound)

	_, err := svc.GetBalance(context.Background(), clientID, accountID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListAccounts(t *testing.T) {
	svc, accounts := newService(t)
	clientID := uuid.New()

	accounts.On("ListByClient", mock.Anything, clientID).Return([]*dto.AccountRead{
		{ID: uuid.New(), ClientID: clientID, Name: "checking"},
		{ID: uuid.New(), ClientID: clientID, Name: "savings"},
	}, nil)

	accts, err := svc.ListAccounts(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, accts, 2)
}

func TestSetAccountActive(t *testing.T) {
	svc, accounts := newService(t)
	accountID := uuid.New()

	accounts.On("SetActive", mock.Anything, accountID, false).Return(nil)

	err := svc.SetAccountActive(context.Background(), accountID, false)
	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestSetAccountActive_NotFound(t *testing.T) {
	svc, accounts := newService(t)
	accountID := uuid.New()

	accounts.On("SetActive", mock.Anything, accountID, true).
		Return(domain.ErrAccountNotFound)

	err := svc.SetAccountActive(context.Background(), accountID, true)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
