package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/ports"
	"github.com/99minutos/exam-api/internal/infrastructure/db/memory"
	mongostore "github.com/99minutos/exam-api/internal/infrastructure/db/mongo"
	redisstore "github.com/99minutos/exam-api/internal/infrastructure/db/redis"
	"github.com/99minutos/exam-api/internal/pkg/config"
)

// openCredentialRepository builds the configured backend. The returned func
// releases its connections.
func openCredentialRepository(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (ports.CredentialRepository, func(), error) {
	switch cfg.Backend {
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "exam-api",
		})
		if err != nil {
			return nil, nil, err
		}
		repo := mongostore.NewCredentialRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo credential store")
		return repo, func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}, nil

	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis credential store")
		return redisstore.NewCredentialRepository(client, cfg.Redis.Key), func() { _ = client.Close() }, nil

	case config.BackendMemory:
		log.Warn().Msg("using in-memory credential store: users are lost on restart and not shared between instances")
		return memory.NewCredentialRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown credential backend %q", cfg.Backend)
	}
}
