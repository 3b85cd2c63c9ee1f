// Package repository defines the persistence contracts the services depend on.
// Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/ksuvorov/bankledger/pkg/repository/account"
	"github.com/ksuvorov/bankledger/pkg/repository/client"
	"github.com/ksuvorov/bankledger/pkg/repository/transaction"
)

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the transaction session,
// so a ledger operation's validate-mutate-log sequence commits or rolls back
// as a single unit.
type UnitOfWork interface {
	// Do runs fn inside one database transaction. The UnitOfWork passed to fn
	// hands out repositories bound to that transaction.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Accounts returns the account repository for the current session.
	Accounts() account.Repository

	// Transactions returns the transaction log repository for the current session.
	Transactions() transaction.Repository

	// Clients returns the client repository for the current session.
	Clients() client.Repository
}
