package sessions

import (
	"context"
	"sync"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/models"
)

// InMemoryRepository keeps sessions in process memory. Used for tests
// and for local runs without store infrastructure.
type InMemoryRepository struct {
	mu      sync.Mutex
	byToken map[string]models.Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byToken: make(map[string]models.Session)}
}

func (r *InMemoryRepository) Create(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byToken[session.Token] = *session
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &session, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, token)
	return nil
}
