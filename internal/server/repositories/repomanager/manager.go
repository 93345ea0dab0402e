// Package repomanager wires the per-entity repositories to a concrete
// storage backend, selected once at startup.
package repomanager

import (
	"github.com/goalboard/authserver/internal/server/repositories/sessions"
	"github.com/goalboard/authserver/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository
}
