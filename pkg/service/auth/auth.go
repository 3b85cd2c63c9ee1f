// Package auth provides client registration, login with JWT issuance, and
// principal extraction for the role-gated API.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/cache"
	"github.com/ksuvorov/bankledger/pkg/config"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/repository"
	"github.com/ksuvorov/bankledger/pkg/utils"
)

// dummyHash keeps password verification constant-time when the email misses.
const dummyHash = "$2a$14$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Principal is the authenticated caller derived from a verified token.
type Principal struct {
	ClientID uuid.UUID
	Role     domain.Role
}

// Service provides registration, login and token handling.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.Cache
	cfg    *config.Jwt
	ttl    time.Duration
	logger *slog.Logger
}

// New creates an auth service. profileTTL bounds how long a cached profile
// email is served without hitting the store.
func New(
	uow repository.UnitOfWork,
	c cache.Cache,
	cfg *config.Jwt,
	profileTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cache: c, cfg: cfg, ttl: profileTTL, logger: logger}
}

// Register creates a new CLIENT from an email and password. A taken email
// fails with domain.ErrClientExists.
func (s *Service) Register(
	ctx context.Context,
	email, password string,
) (c *dto.ClientRead, err error) {
	log := s.logger.With("email", email)
	log.Info("Register started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Clients().GetByEmail(ctx, email); err == nil {
			return domain.ErrClientExists
		} else if !errors.Is(err, domain.ErrClientNotFound) {
			return err
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		create := dto.ClientCreate{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleClient,
		}
		if err := uow.Clients().Create(ctx, create); err != nil {
			return err
		}
		c, err = uow.Clients().Get(ctx, create.ID)
		return err
	})
	if err != nil {
		c = nil
		log.Error("Register failed", "error", err)
		return
	}
	s.cacheEmail(ctx, c.ID, c.Email)
	log.Info("Register successful", "clientID", c.ID)
	return
}

// Login verifies credentials and returns a signed access token.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (token string, err error) {
	log := s.logger.With("email", email)
	log.Info("Login started")
	var c *dto.ClientRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		c, err = uow.Clients().GetByEmail(ctx, email)
		if errors.Is(err, domain.ErrClientNotFound) {
			_ = utils.CheckPasswordHash(password, dummyHash)
			return domain.ErrUnauthorized
		}
		return err
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return "", err
	}
	if !utils.CheckPasswordHash(password, c.PasswordHash) {
		log.Error("Login failed", "error", domain.ErrUnauthorized)
		return "", domain.ErrUnauthorized
	}
	token, err = s.generateToken(c)
	if err != nil {
		log.Error("Login failed", "error", err)
		return "", err
	}
	s.cacheEmail(ctx, c.ID, c.Email)
	log.Info("Login successful", "clientID", c.ID)
	return token, nil
}

// Profile returns the client's email, cache-first.
func (s *Service) Profile(ctx context.Context, clientID uuid.UUID) (string, error) {
	if email, err := s.cache.Get(ctx, clientID.String()); err == nil && email != "" {
		return email, nil
	}
	var c *dto.ClientRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		c, err = uow.Clients().Get(ctx, clientID)
		return err
	})
	if err != nil {
		return "", err
	}
	s.cacheEmail(ctx, c.ID, c.Email)
	return c.Email, nil
}

// CurrentPrincipal extracts the authenticated principal from a verified token.
func (s *Service) CurrentPrincipal(token *jwt.Token) (Principal, error) {
	if token == nil {
		return Principal{}, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, domain.ErrUnauthorized
	}
	rawID, ok := claims["client_id"].(string)
	if !ok {
		return Principal{}, domain.ErrUnauthorized
	}
	clientID, err := uuid.Parse(rawID)
	if err != nil {
		return Principal{}, domain.ErrUnauthorized
	}
	role, _ := claims["role"].(string)
	return Principal{ClientID: clientID, Role: domain.Role(role)}, nil
}

// EnsureAdmin creates the configured back-office administrator when absent.
// There is no public admin registration route.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	log := s.logger.With("email", email)
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		_, err := uow.Clients().GetByEmail(ctx, email)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrClientNotFound) {
			return err
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		if err := uow.Clients().Create(ctx, dto.ClientCreate{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}); err != nil {
			return err
		}
		log.Info("admin client seeded")
		return nil
	})
}

func (s *Service) generateToken(c *dto.ClientRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["client_id"] = c.ID.String()
	claims["email"] = c.Email
	claims["role"] = string(c.Role)
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// cacheEmail is best effort; a cache failure never fails the operation.
func (s *Service) cacheEmail(ctx context.Context, clientID uuid.UUID, email string) {
	if err := s.cache.Set(ctx, clientID.String(), email, s.ttl); err != nil {
		s.logger.Warn("profile cache set failed", "clientID", clientID, "error", err)
	}
}
