package repository

import (
	"context"

	"textvault/internal/model"
)

// UserRepository defines data access for owner accounts.
type UserRepository interface {
	// Create inserts a new user. A username collision yields
	// apperr.ErrDuplicateName.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByUsername returns the user or apperr.ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
