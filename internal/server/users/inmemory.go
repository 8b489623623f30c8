package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmaslov/passport/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is the reference store used by tests and local runs.
// The uniqueness check and the insert happen under one lock, so concurrent
// signups for the same email resolve to exactly one winner, matching the
// postgres constraint semantics.
type InMemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	now := time.Now().UTC()
	stored := &User{
		ID:           uuid.NewString(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byEmail[stored.Email] = stored

	out := *stored
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *stored
	return &out, nil
}
