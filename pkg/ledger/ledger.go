// Package ledger implements the ledger engine: the orchestrator enforcing
// preconditions and coordinating balance mutation plus log append for each
// financial operation.
//
// Every operation follows the same shape inside one unit of work: validate
// preconditions against the account store in a fixed order, mutate balance(s),
// append a transaction record. A failed precondition aborts before any
// mutation; a failure after the first mutation rolls the whole unit back, so
// no partially-applied transfer can ever be observed.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/money"
	"github.com/ksuvorov/bankledger/pkg/repository"
)

// Service is the ledger engine. It holds no state of its own; account
// balances are read fresh inside each unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a ledger engine on the given unit of work.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Deposit credits amount to the client's account and appends a DEPOSIT record.
func (s *Service) Deposit(
	ctx context.Context,
	clientID, accountID uuid.UUID,
	amount money.Amount,
) (rec *dto.TransactionRead, err error) {
	log := s.logger.With("clientID", clientID, "accountID", accountID, "amount", amount)
	log.Info("Deposit started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acct, err := uow.Accounts().GetOwned(ctx, clientID, accountID)
		if err != nil {
			return err
		}
		if !acct.Active {
			return domain.ErrAccountBlocked
		}
		if err := uow.Accounts().Credit(ctx, accountID, amount); err != nil {
			return err
		}
		rec, err = s.append(ctx, uow, clientID, amount, domain.TypeDeposit, nil, &accountID)
		return err
	})
	if err != nil {
		rec = nil
		log.Error("Deposit failed", "error", err)
		return
	}
	log.Info("Deposit successful", "transactionID", rec.ID)
	return
}

// Withdraw debits amount from the client's account and appends a WITHDRAW
// record. The balance precondition is checked on the snapshot for a clean
// error, and enforced again by the conditional debit so concurrent
// withdrawals cannot overdraw the account.
func (s *Service) Withdraw(
	ctx context.Context,
	clientID, accountID uuid.UUID,
	amount money.Amount,
) (rec *dto.TransactionRead, err error) {
	log := s.logger.With("clientID", clientID, "accountID", accountID, "amount", amount)
	log.Info("Withdraw started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acct, err := uow.Accounts().GetOwned(ctx, clientID, accountID)
		if err != nil {
			return err
		}
		if !acct.Active {
			return domain.ErrAccountBlocked
		}
		if acct.Balance < amount {
			return domain.ErrInsufficientFunds
		}
		if err := uow.Accounts().Debit(ctx, accountID, amount); err != nil {
			return err
		}
		rec, err = s.append(ctx, uow, clientID, amount, domain.TypeWithdraw, &accountID, nil)
		return err
	})
	if err != nil {
		rec = nil
		log.Error("Withdraw failed", "error", err)
		return
	}
	log.Info("Withdraw successful", "transactionID", rec.ID)
	return
}

// Transfer moves amount between two accounts of the same client and appends a
// TRANSFER record. An account missing or owned by someone else fails the
// same-client precondition.
func (s *Service) Transfer(
	ctx context.Context,
	clientID, fromID, toID uuid.UUID,
	amount money.Amount,
) (rec *dto.TransactionRead, err error) {
	log := s.logger.With(
		"clientID", clientID,
		"fromAccountID", fromID,
		"toAccountID", toID,
		"amount", amount,
	)
	log.Info("Transfer started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		from, err := uow.Accounts().GetOwned(ctx, clientID, fromID)
		if err != nil {
			return asSameClientErr(err)
		}
		to, err := uow.Accounts().GetOwned(ctx, clientID, toID)
		if err != nil {
			return asSameClientErr(err)
		}
		if !from.Active || !to.Active {
			return domain.ErrAccountBlocked
		}
		if from.Balance < amount {
			return domain.ErrInsufficientFunds
		}
		if err := uow.Accounts().Debit(ctx, fromID, amount); err != nil {
			return err
		}
		if err := uow.Accounts().Credit(ctx, toID, amount); err != nil {
			return err
		}
		rec, err = s.append(ctx, uow, clientID, amount, domain.TypeTransfer, &fromID, &toID)
		return err
	})
	if err != nil {
		rec = nil
		log.Error("Transfer failed", "error", err)
		return
	}
	log.Info("Transfer successful", "transactionID", rec.ID)
	return
}

// P2PTransfer moves amount from one client's account to another client's
// account. This is the cross-client path: there is deliberately no same-owner
// check, each account only has to belong to its respective client. The record
// is owned by the sending client.
func (s *Service) P2PTransfer(
	ctx context.Context,
	fromClientID, toClientID, fromID, toID uuid.UUID,
	amount money.Amount,
) (rec *dto.TransactionRead, err error) {
	log := s.logger.With(
		"fromClientID", fromClientID,
		"toClientID", toClientID,
		"fromAccountID", fromID,
		"toAccountID", toID,
		"amount", amount,
	)
	log.Info("P2PTransfer started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		from, err := uow.Accounts().GetOwned(ctx, fromClientID, fromID)
		if err != nil {
			return err
		}
		to, err := uow.Accounts().GetOwned(ctx, toClientID, toID)
		if err != nil {
			return err
		}
		if !from.Active || !to.Active {
			return domain.ErrAccountBlocked
		}
		if from.Balance < amount {
			return domain.ErrInsufficientFunds
		}
		if err := uow.Accounts().Debit(ctx, fromID, amount); err != nil {
			return err
		}
		if err := uow.Accounts().Credit(ctx, toID, amount); err != nil {
			return err
		}
		rec, err = s.append(ctx, uow, fromClientID, amount, domain.TypeP2PTransfer, &fromID, &toID)
		return err
	})
	if err != nil {
		rec = nil
		log.Error("P2PTransfer failed", "error", err)
		return
	}
	log.Info("P2PTransfer successful", "transactionID", rec.ID)
	return
}

// ListTransactions lists all of a client's transactions.
func (s *Service) ListTransactions(
	ctx context.Context,
	clientID uuid.UUID,
) (recs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		recs, err = uow.Transactions().ListByClient(ctx, clientID)
		return err
	})
	if err != nil {
		recs = nil
	}
	return
}

// ListAccountTransactions lists the client's transactions touching one
// account. Ownership is verified first, fail-fast; after that an empty list
// is a valid answer.
func (s *Service) ListAccountTransactions(
	ctx context.Context,
	clientID, accountID uuid.UUID,
) (recs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Accounts().GetOwned(ctx, clientID, accountID); err != nil {
			return err
		}
		recs, err = uow.Transactions().ListByAccount(ctx, clientID, accountID)
		return err
	})
	if err != nil {
		recs = nil
	}
	return
}

// ListAllTransactions is the admin view over the whole log.
func (s *Service) ListAllTransactions(
	ctx context.Context,
	sort dto.SortSpec,
) (recs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		recs, err = uow.Transactions().ListAll(ctx, sort)
		return err
	})
	if err != nil {
		recs = nil
	}
	return
}

// append writes the record as the last step of an operation and returns its
// read projection.
func (s *Service) append(
	ctx context.Context,
	uow repository.UnitOfWork,
	clientID uuid.UUID,
	amount money.Amount,
	typ domain.TransactionType,
	from, to *uuid.UUID,
) (*dto.TransactionRead, error) {
	create := dto.TransactionCreate{
		ID:            uuid.New(),
		ClientID:      clientID,
		Amount:        amount,
		Type:          typ,
		Status:        domain.StatusSuccess,
		FromAccountID: from,
		ToAccountID:   to,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uow.Transactions().Create(ctx, create); err != nil {
		return nil, err
	}
	return &dto.TransactionRead{
		ID:            create.ID,
		ClientID:      create.ClientID,
		Amount:        create.Amount,
		Type:          create.Type,
		Status:        create.Status,
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		CreatedAt:     create.CreatedAt,
	}, nil
}

func asSameClientErr(err error) error {
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.ErrNotSameClient
	}
	return err
}
