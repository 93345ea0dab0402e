package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/dbx"
	"github.com/goalboard/authserver/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) error {

	query :=
		`INSERT INTO sessions (token, user_id, device_id, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		session.Token, session.UserID, session.DeviceID, session.CreatedAt, session.ExpiresAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	query :=
		`SELECT token, user_id, device_id, created_at, expires_at FROM sessions
		 WHERE token = $1
		 `

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&session.Token, &session.UserID, &session.DeviceID, &session.CreatedAt, &session.ExpiresAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

// Delete removes the session row. DELETE matching zero rows succeeds,
// which gives logout its idempotency.
func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	query :=
		`DELETE FROM sessions
		 WHERE token = $1
		 `

	_, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
