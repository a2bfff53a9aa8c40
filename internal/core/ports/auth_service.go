package ports

import "context"

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	// Login returns a signed bearer token. Unknown users and wrong passwords
	// both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
