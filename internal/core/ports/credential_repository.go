package ports

import (
	"context"

	"github.com/99minutos/exam-api/internal/core/domain"
)

// CredentialRepository persists credentials.
//
// Create must be an atomic insert-if-absent: when two callers race on the same
// username exactly one succeeds and the other gets domain.ErrUserExists.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	// FindByUsername returns domain.ErrUserNotFound for unknown usernames.
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
	Ping(ctx context.Context) error
}
