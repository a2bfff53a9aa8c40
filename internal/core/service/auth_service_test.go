package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/domain"
)

type stubTokenIssuer struct {
	issued []string
	err    error
}

func (s *stubTokenIssuer) Issue(username string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, username)
	return "token-for-" + username, nil
}

func newTestAuthService() (*AuthService, *stubTokenIssuer) {
	tokens := &stubTokenIssuer{}
	return NewAuthService(newTestStore(newStubCredentialRepo()), tokens, zerolog.Nop()), tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, tokens := newTestAuthService()

	if err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "token-for-carol" {
		t.Fatalf("unexpected token: %q", token)
	}
	if len(tokens.issued) != 1 || tokens.issued[0] != "carol" {
		t.Fatalf("expected one token issued for carol, got %v", tokens.issued)
	}
}

func TestAuthService_Login_SameErrorForUnknownAndWrongPassword(t *testing.T) {
	svc, tokens := newTestAuthService()
	_ = svc.Register(context.Background(), "dave", "goodpass")

	_, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost", "goodpass")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknown)
	}
	if len(tokens.issued) != 0 {
		t.Fatalf("no token should be issued, got %v", tokens.issued)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Login_IssuerError(t *testing.T) {
	svc, tokens := newTestAuthService()
	_ = svc.Register(context.Background(), "erin", "pass")
	tokens.err = errors.New("signing failed")

	if _, err := svc.Login(context.Background(), "erin", "pass"); err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected signing error, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestAuthService()

	if err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := svc.Register(context.Background(), "bob", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
