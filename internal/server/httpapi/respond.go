package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goalboard/authserver/internal/common"
)

// InternalErrorMessage is the only string clients ever see for
// unexpected failures.
const InternalErrorMessage = "Internal server error"

var errInvalidBody = errors.New("invalid request body")

// response is the envelope returned by every endpoint.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func decodeJSON(r *http.Request, dest any) error {
	if r.Body == nil {
		return errInvalidBody
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return errInvalidBody
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, response{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), response{Success: false, Error: messageForError(err)})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorMissingFields),
		errors.Is(err, common.ErrorInvalidEmail),
		errors.Is(err, common.ErrorPasswordTooShort),
		errors.Is(err, common.ErrorMissingCredentials),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorEmailTaken):
		return http.StatusConflict
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrorNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageForError returns the curated client-facing message. Anything
// that is not a known kind collapses to the generic internal message so
// store errors never reach the wire.
func messageForError(err error) string {
	if statusForError(err) == http.StatusInternalServerError {
		return InternalErrorMessage
	}
	return err.Error()
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}
