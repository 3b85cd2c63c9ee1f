package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/ksuvorov/bankledger/infra"
	infracache "github.com/ksuvorov/bankledger/infra/cache"
	infrarepo "github.com/ksuvorov/bankledger/infra/repository"
	"github.com/ksuvorov/bankledger/pkg/app"
	"github.com/ksuvorov/bankledger/pkg/cache"
	"github.com/ksuvorov/bankledger/pkg/config"
	"github.com/ksuvorov/bankledger/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := infra.RunMigrations(cfg.DB.Url, cfg.DB.MigrationsPath, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var c cache.Cache
	if cfg.Redis.URL != "" {
		c, err = infracache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
	} else {
		c = infracache.NewMemoryCache()
	}

	a := app.New(app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Cache:  c,
		Logger: logger,
	}, cfg)

	if err := a.AuthService.EnsureAdmin(
		context.Background(), cfg.Admin.Email, cfg.Admin.Password,
	); err != nil {
		return fmt.Errorf("failed to ensure admin client: %w", err)
	}

	logger.Info("starting server",
		"env", cfg.Env,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	return webapi.SetupApp(a).
		Listen(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}

func newLogger(cfg *config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
