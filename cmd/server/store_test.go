package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/infrastructure/db/memory"
	"github.com/99minutos/exam-api/internal/pkg/config"
)

func TestOpenCredentialRepository_Memory(t *testing.T) {
	repo, closeFn, err := openCredentialRepository(context.Background(), config.StoreConfig{Backend: config.BackendMemory}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*memory.CredentialRepository); !ok {
		t.Fatalf("expected memory repository, got %T", repo)
	}
}

func TestOpenCredentialRepository_Unknown(t *testing.T) {
	if _, _, err := openCredentialRepository(context.Background(), config.StoreConfig{Backend: "sqlite"}, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
