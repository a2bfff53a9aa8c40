package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/exam-api/internal/core/domain"
	"github.com/99minutos/exam-api/internal/core/ports"
)

// dummyHash is compared against when the username is unknown so that a
// missing user costs the same bcrypt work as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("exam-api:dummy-password"), bcrypt.DefaultCost)

// CredentialStore hashes passwords with bcrypt and keeps them in a
// CredentialRepository.
type CredentialStore struct {
	repo ports.CredentialRepository
	cost int
	log  zerolog.Logger
}

// NewCredentialStore returns a store using bcrypt.DefaultCost when cost is 0.
func NewCredentialStore(repo ports.CredentialRepository, cost int, log zerolog.Logger) *CredentialStore {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{repo: repo, cost: cost, log: log}
}

// Register stores a new credential. It fails with domain.ErrInvalidInput on
// empty fields, domain.ErrPasswordTooLong past bcrypt's limit and
// domain.ErrUserExists when the username is taken.
func (s *CredentialStore) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.ErrPasswordTooLong
		}
		return fmt.Errorf("hash password: %w", err)
	}

	cred := &domain.Credential{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, cred); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return nil
}

// Verify reports whether password matches the stored credential. Unknown
// usernames yield false without an error.
func (s *CredentialStore) Verify(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, domain.ErrInvalidInput
	}

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return false, nil
		}
		return false, err
	}

	return bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) == nil, nil
}
