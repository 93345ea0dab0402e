package users

import (
	"context"
	"sync"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/models"
)

// InMemoryRepository keeps accounts in process memory. Used for tests
// and for local runs without store infrastructure. Email uniqueness is
// enforced under the mutex, so concurrent registrations cannot both
// succeed.
type InMemoryRepository struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorEmailTaken
	}

	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	user := r.byID[id]
	return &user, nil
}
