// Package client implements the client store on GORM/Postgres.
package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	repo "github.com/ksuvorov/bankledger/pkg/repository/client"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a client repository using the provided *gorm.DB session.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements client.Repository.
func (r *repository) Create(ctx context.Context, create dto.ClientCreate) error {
	c := Client{
		ID:       create.ID,
		Email:    create.Email,
		Password: create.PasswordHash,
		Role:     string(create.Role),
	}
	return r.db.WithContext(ctx).Create(&c).Error
}

// Get implements client.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error) {
	var c Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&c), nil
}

// GetByEmail implements client.Repository.
func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error) {
	var c Client
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&c), nil
}

func mapModelToDTO(c *Client) *dto.ClientRead {
	return &dto.ClientRead{
		ID:           c.ID,
		Email:        c.Email,
		PasswordHash: c.Password,
		Role:         domain.Role(c.Role),
		CreatedAt:    c.CreatedAt,
	}
}
