package httpapi

import (
	"context"
	"net/http"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId,omitempty"`
}

type loginData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := s.auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		s.logFailure(ctx, "register", err)
		respondError(w, err)
		return
	}

	s.logger.Info(ctx, "user registered", "userId", user.ID)
	respondData(w, http.StatusCreated, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := s.auth.Login(ctx, req.Email, req.Password, req.DeviceID)
	if err != nil {
		s.logFailure(ctx, "login", err)
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, loginData{Token: result.Token, User: result.User})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	token, ok := tokenFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorNotAuthenticated)
		return
	}

	if err := s.auth.Logout(ctx, token); err != nil {
		s.logFailure(ctx, "logout", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response{Success: true})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	claims, ok := claimsFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorNotAuthenticated)
		return
	}

	user, err := s.auth.GetUserByID(ctx, claims.UserID)
	if err != nil {
		s.logFailure(ctx, "profile", err)
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, user)
}

// logFailure records unexpected errors server-side; expected kinds
// (validation, credentials, not-found) stay out of the error log.
func (s *Server) logFailure(ctx context.Context, op string, err error) {
	if statusForError(err) == http.StatusInternalServerError {
		s.logger.Error(ctx, "request failed", "op", op, "error", err.Error())
	}
}
