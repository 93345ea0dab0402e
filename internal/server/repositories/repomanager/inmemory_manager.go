package repomanager

import (
	"github.com/goalboard/authserver/internal/server/repositories/sessions"
	"github.com/goalboard/authserver/internal/server/repositories/users"
)

type InMemoryRepositoryManager struct {
	users    users.Repository
	sessions sessions.Repository
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
	}
}
