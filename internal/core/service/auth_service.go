package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/domain"
	"github.com/99minutos/exam-api/internal/core/ports"
	"github.com/99minutos/exam-api/internal/pkg/metrics"
)

// AuthService implements registration and login.
type AuthService struct {
	store  ports.CredentialStore
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	err := s.store.Register(ctx, username, password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	case errors.Is(err, domain.ErrUserExists):
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
	}
	return err
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.store.Verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return "", err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.log.Debug().Str("username", username).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}
