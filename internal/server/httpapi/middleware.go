package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/auth"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	tokenKey  ctxKey = "token"
)

// authenticate gates protected routes: the Authorization header must be
// present, carry the bearer scheme, and hold a token that passes
// signature and expiry checks. Verification is stateless; the session
// store is not consulted.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			respondError(w, common.ErrorNotAuthenticated)
			return
		}

		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			respondError(w, common.ErrorNotAuthenticated)
			return
		}

		claims, err := s.auth.VerifyToken(token)
		if err != nil {
			respondError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// recoverer converts panics anywhere below into the generic 500
// envelope; the detail stays in the server log.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error(r.Context(), "panic recovered", "path", r.URL.Path, "panic", fmt.Sprintf("%v", p))
				respondJSON(w, http.StatusInternalServerError, response{Success: false, Error: InternalErrorMessage})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
