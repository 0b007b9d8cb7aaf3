// Package users declares the account store and its PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/rainyday/internal/server/models"
)

type Repository interface {
	// Create stores user and fills in ID and CreatedAt. A taken email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrorNotFound for unknown addresses.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
