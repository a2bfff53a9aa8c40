// Package memory holds process-local repositories. Data does not survive a
// restart and is not shared between instances.
package memory

import (
	"context"
	"sync"

	"github.com/99minutos/exam-api/internal/core/domain"
)

type CredentialRepository struct {
	mu    sync.RWMutex
	users map[string]domain.Credential
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{users: make(map[string]domain.Credential)}
}

// Create inserts cred unless the username exists. The check and the insert
// happen under one lock.
func (r *CredentialRepository) Create(_ context.Context, cred *domain.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[cred.Username]; exists {
		return domain.ErrUserExists
	}
	r.users[cred.Username] = *cred
	return nil
}

func (r *CredentialRepository) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &c, nil
}

func (r *CredentialRepository) Ping(context.Context) error {
	return nil
}
