// Package services contains the authentication core: credential
// validation, the password hashing policy, token issuance, and the
// session lifecycle.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/auth"
	"github.com/goalboard/authserver/internal/server/config"
	"github.com/goalboard/authserver/internal/server/models"
	"github.com/goalboard/authserver/internal/server/repositories/repomanager"
	"github.com/goalboard/authserver/internal/server/repositories/sessions"
	"github.com/goalboard/authserver/internal/server/repositories/users"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string
	User  *models.User
}

type AuthService struct {
	users                 users.Repository
	sessions              sessions.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	hashCost              int
}

func NewAuthService(rm repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		users:                 rm.Users(),
		sessions:              rm.Sessions(),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		hashCost:              cfg.BcryptCost,
	}
}

// Register validates the supplied fields in order (first failure wins),
// hashes the password, and persists the new account in a single store
// write. The returned User carries the stored hash; serialized views
// omit it.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {

	if email == "" || password == "" || name == "" {
		return nil, common.ErrorMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, common.ErrorInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrorPasswordTooShort
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorEmailTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		// A store that enforces email uniqueness itself reports the
		// duplicate that slipped past the check above.
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login authenticates the credentials, issues a signed token, and
// persists the session. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password, deviceID string) (*LoginResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrorMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	now := time.Now().UTC()
	session := &models.Session{
		UserID:    user.ID,
		Token:     token,
		DeviceID:  deviceID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenValidityDuration),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout deletes the session keyed by token. Retrying a logout is a
// no-op success.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// VerifyToken checks signature and expiry only; it never consults the
// store. A logged-out token therefore stays well-formed until its
// natural expiry. Callers needing strict revocation must additionally
// check session existence.
func (s *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

// GetUserByID looks up an account by id; a miss surfaces as
// common.ErrorNotFound for the request layer to map.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
