// Package sessions declares the server-side repository contract for
// managing login sessions in persistent storage.
package sessions

import (
	"context"

	"github.com/goalboard/authserver/internal/server/models"
)

// Repository defines operations for creating, retrieving, and revoking
// sessions. The token string is the primary key.
type Repository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *models.Session) error

	// Get looks up a session by its token and returns its metadata.
	// Implementations return common.ErrorNotFound when the token is
	// absent. Token verification itself never calls this; it exists as
	// the extension point for strict revocation checks.
	Get(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session by its token. Deleting a non-existent
	// session is not an error.
	Delete(ctx context.Context, token string) error
}
