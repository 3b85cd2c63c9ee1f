// Package repository provides the GORM-backed unit of work binding the
// account, transaction and client repositories to one transaction session.
package repository

import (
	"context"

	infraaccount "github.com/ksuvorov/bankledger/infra/repository/account"
	infraclient "github.com/ksuvorov/bankledger/infra/repository/client"
	infratransaction "github.com/ksuvorov/bankledger/infra/repository/transaction"
	"github.com/ksuvorov/bankledger/pkg/repository"
	repoaccount "github.com/ksuvorov/bankledger/pkg/repository/account"
	repoclient "github.com/ksuvorov/bankledger/pkg/repository/client"
	repotransaction "github.com/ksuvorov/bankledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork on a *gorm.DB. Repositories handed out
// inside Do use the transaction session, so a ledger operation's balance
// mutations and log append commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs fn inside one database transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// Accounts implements repository.UnitOfWork.
func (u *UoW) Accounts() repoaccount.Repository {
	return infraaccount.New(u.session())
}

// Transactions implements repository.UnitOfWork.
func (u *UoW) Transactions() repotransaction.Repository {
	return infratransaction.New(u.session())
}

// Clients implements repository.UnitOfWork.
func (u *UoW) Clients() repoclient.Repository {
	return infraclient.New(u.session())
}
