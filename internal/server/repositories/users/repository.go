// Package users declares the server-side repository contract for the
// user account store.
package users

import (
	"context"

	"github.com/goalboard/authserver/internal/server/models"
)

// Repository defines operations over persisted user accounts.
type Repository interface {
	// Create persists a new user. Implementations that can enforce
	// email uniqueness return common.ErrorEmailTaken on a duplicate.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID looks up a user by its opaque id. Implementations return
	// common.ErrorNotFound when no such user exists.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail looks up a user through the email secondary index.
	// Implementations return common.ErrorNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
