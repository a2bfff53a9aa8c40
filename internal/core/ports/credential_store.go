package ports

import "context"

// CredentialStore registers and verifies username/password pairs.
type CredentialStore interface {
	Register(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (bool, error)
}
