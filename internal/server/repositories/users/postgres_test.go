package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func testUser() *models.User {
	return &models.User{
		ID:           "id-1",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$hash",
		Name:         "A",
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

const insertUserPattern = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash,\s*name,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*$`

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := testUser()

	mock.ExpectExec(insertUserPattern).
		WithArgs(u.ID, u.Email, u.PasswordHash, u.Name, u.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := testUser()

	mock.ExpectExec(insertUserPattern).
		WithArgs(u.ID, u.Email, u.PasswordHash, u.Name, u.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.Create(context.Background(), u)
	if !errors.Is(err, common.ErrorEmailTaken) {
		t.Fatalf("expected common.ErrorEmailTaken, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := testUser()

	mock.ExpectExec(insertUserPattern).
		WithArgs(u.ID, u.Email, u.PasswordHash, u.Name, u.CreatedAt).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), u)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresGetByEmail_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := testUser()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
		AddRow(u.ID, u.Email, u.PasswordHash, u.Name, u.CreatedAt)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*name,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`).
		WithArgs(u.Email).
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), u.Email)
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != u.ID || got.PasswordHash != u.PasswordHash {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPostgresGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,`).
		WithArgs("missing@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@b.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,`).
		WithArgs("no-such-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
