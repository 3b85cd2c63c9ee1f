// Package app wires the services onto their infrastructure dependencies and
// carries them to the web layer.
package app

import (
	"log/slog"

	"github.com/ksuvorov/bankledger/pkg/cache"
	"github.com/ksuvorov/bankledger/pkg/config"
	"github.com/ksuvorov/bankledger/pkg/ledger"
	"github.com/ksuvorov/bankledger/pkg/repository"
	accountsvc "github.com/ksuvorov/bankledger/pkg/service/account"
	authsvc "github.com/ksuvorov/bankledger/pkg/service/auth"
)

// Deps bundles the infrastructure the services are built on.
type Deps struct {
	Uow    repository.UnitOfWork
	Cache  cache.Cache
	Logger *slog.Logger
}

// App is the composed application passed to the web layer.
type App struct {
	Deps
	Config *config.App

	AuthService    *authsvc.Service
	AccountService *accountsvc.Service
	Ledger         *ledger.Service
}

// New builds the service graph from deps and config.
func New(deps Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		AuthService:    authsvc.New(deps.Uow, deps.Cache, cfg.Jwt, cfg.Redis.ProfileTTL, deps.Logger),
		AccountService: accountsvc.New(deps.Uow, deps.Logger),
		Ledger:         ledger.New(deps.Uow, deps.Logger),
	}
}
