package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	infraaccount "github.com/ksuvorov/bankledger/infra/repository/account"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	repo "github.com/ksuvorov/bankledger/pkg/repository/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepo(t *testing.T) (repo.Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return infraaccount.New(db), mock
}

func accountRows(id, clientID uuid.UUID, balance int64, active bool) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.
		NewRows([]string{"id", "client_id", "name", "balance", "active", "created_at", "updated_at"}).
		AddRow(id, clientID, "checking", balance, active, now, now)
}

func TestCreate(t *testing.T) {
	r, mock := newRepo(t)
	create := dto.AccountCreate{ID: uuid.New(), ClientID: uuid.New(), Name: "checking"}

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WithArgs(create.ID, create.ClientID, create.Name, int64(0), true,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Create(context.Background(), create)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwned(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 AND client_id = \$2`).
		WithArgs(id, clientID, 1).
		WillReturnRows(accountRows(id, clientID, 15000, true))

	acct, err := r.GetOwned(context.Background(), clientID, id)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(15000), acct.Balance)
	assert.True(t, acct.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwned_ForeignAccount(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 AND client_id = \$2`).
		WithArgs(id, clientID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "client_id", "name", "balance", "active", "created_at", "updated_at"},
		))

	_, err := r.GetOwned(context.Background(), clientID, id)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCredit(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance \+ \$1 WHERE id = \$2`).
		WithArgs(int64(5000), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Credit(context.Background(), id, 5000)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredit_MissingAccount(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance \+ \$1`).
		WithArgs(int64(5000), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Credit(context.Background(), id, 5000)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDebit(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance - \$1 WHERE id = \$2 AND balance >= \$3`).
		WithArgs(int64(2500), id, int64(2500)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Debit(context.Background(), id, 2500)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_GuardRejects(t *testing.T) {
	// zero affected rows means the balance guard refused the update
	r, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance - \$1 WHERE id = \$2 AND balance >= \$3`).
		WithArgs(int64(999999), id, int64(999999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Debit(context.Background(), id, 999999)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestSetActive(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "active"=\$1`).
		WithArgs(false, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.SetActive(context.Background(), id, false)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActive_MissingAccount(t *testing.T) {
	r, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET "active"=\$1`).
		WithArgs(true, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.SetActive(context.Background(), id, true)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListByClient(t *testing.T) {
	r, mock := newRepo(t)
	clientID := uuid.New()

	rows := accountRows(uuid.New(), clientID, 100, true).
		AddRow(uuid.New(), clientID, "savings", int64(200), true,
			time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE client_id = \$1`).
		WithArgs(clientID).
		WillReturnRows(rows)

	accts, err := r.ListByClient(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, accts, 2)
}
