package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/exam-api/internal/core/domain"
)

// DefaultKey is the hash holding every credential, keyed by username.
const DefaultKey = "exam:credentials"

// CredentialRepository stores credentials as fields of one Redis hash.
// HSETNX is the atomic insert-if-absent.
type CredentialRepository struct {
	client *redis.Client
	key    string
}

func NewCredentialRepository(client *redis.Client, key string) *CredentialRepository {
	if key == "" {
		key = DefaultKey
	}
	return &CredentialRepository{client: client, key: key}
}

type redisCredential struct {
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
}

func (r *CredentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	val, err := encodeCredential(cred)
	if err != nil {
		return err
	}
	ok, err := r.client.HSetNX(ctx, r.key, cred.Username, val).Result()
	if err != nil {
		return fmt.Errorf("hsetnx credential: %w", err)
	}
	if !ok {
		return domain.ErrUserExists
	}
	return nil
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	val, err := r.client.HGet(ctx, r.key, username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("hget credential: %w", err)
	}
	return decodeCredential(username, val)
}

func (r *CredentialRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func encodeCredential(cred *domain.Credential) (string, error) {
	b, err := json.Marshal(redisCredential{
		PasswordHash: cred.PasswordHash,
		CreatedAt:    cred.CreatedAt.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("encode credential: %w", err)
	}
	return string(b), nil
}

func decodeCredential(username, val string) (*domain.Credential, error) {
	var rc redisCredential
	if err := json.Unmarshal([]byte(val), &rc); err != nil {
		return nil, fmt.Errorf("decode credential %q: %w", username, err)
	}
	cred := &domain.Credential{Username: username, PasswordHash: rc.PasswordHash}
	if rc.CreatedAt != 0 {
		cred.CreatedAt = time.Unix(rc.CreatedAt, 0).UTC()
	}
	return cred, nil
}
