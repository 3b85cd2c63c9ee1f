// Package account provides business logic for opening accounts, balance
// queries, ownership-scoped listings and the admin freeze/unfreeze switch.
// Balance mutation is not part of this service; only the ledger engine
// mutates balances.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	"github.com/ksuvorov/bankledger/pkg/repository"
)

// Service provides account operations on top of the unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateAccount opens a new account for the client with a zero balance.
func (s *Service) CreateAccount(
	ctx context.Context,
	clientID uuid.UUID,
	name string,
) (acct *dto.AccountRead, err error) {
	log := s.logger.With("clientID", clientID, "name", name)
	log.Info("CreateAccount started")
	create := dto.AccountCreate{ID: uuid.New(), ClientID: clientID, Name: name}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Accounts().Create(ctx, create); err != nil {
			return err
		}
		acct, err = uow.Accounts().Get(ctx, create.ID)
		return err
	})
	if err != nil {
		acct = nil
		log.Error("CreateAccount failed", "error", err)
		return
	}
	log.Info("CreateAccount successful", "accountID", acct.ID)
	return
}

// GetBalance returns the balance of an account owned by the client.
func (s *Service) GetBalance(
	ctx context.Context,
	clientID, accountID uuid.UUID,
) (balance money.Amount, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acct, err := uow.Accounts().GetOwned(ctx, clientID, accountID)
		if err != nil {
			return err
		}
		balance = acct.Balance
		return nil
	})
	return
}

// ListAccounts lists all accounts of a client. The admin view calls this with
// an arbitrary target client id.
func (s *Service) ListAccounts(
	ctx context.Context,
	clientID uuid.UUID,
) (accts []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accts, err = uow.Accounts().ListByClient(ctx, clientID)
		return err
	})
	if err != nil {
		accts = nil
	}
	return
}

// SetAccountActive freezes or unfreezes an account. Admin only; the web layer
// enforces the role.
func (s *Service) SetAccountActive(
	ctx context.Context,
	accountID uuid.UUID,
	active bool,
) error {
	log := s.logger.With("accountID", accountID, "active", active)
	log.Info("SetAccountActive started")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Accounts().SetActive(ctx, accountID, active)
	})
	if err != nil {
		log.Error("SetAccountActive failed", "error", err)
		return err
	}
	log.Info("SetAccountActive successful")
	return nil
}
