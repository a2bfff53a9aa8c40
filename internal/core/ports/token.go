package ports

// TokenIssuer mints bearer tokens bound to a username.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// TokenVerifier validates a bearer token and returns the username it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
