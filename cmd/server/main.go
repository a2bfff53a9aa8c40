// Command server runs the exam API.
//
// @title                       Exam API
// @version                     1.0
// @description                 Registration, bearer-token login and scoring of a fixed multiple-choice exam.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/99minutos/exam-api/internal/api"
	"github.com/99minutos/exam-api/internal/api/handler"
	"github.com/99minutos/exam-api/internal/core/domain"
	"github.com/99minutos/exam-api/internal/core/service"
	"github.com/99minutos/exam-api/internal/infrastructure/bank"
	"github.com/99minutos/exam-api/internal/infrastructure/token"
	"github.com/99minutos/exam-api/internal/pkg/config"
	"github.com/99minutos/exam-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "exam-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generated, err := cfg.EnsureJWTSecret()
	if err != nil {
		log.Fatal().Err(err).Msg("jwt secret")
	}
	if generated {
		log.Warn().Msg("JWT_SECRET not set: using a random signing key, issued tokens become invalid on restart")
	}

	questions, err := bank.Load(cfg.Exam.QuestionBankPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Exam.QuestionBankPath).Msg("load question bank")
	}
	policy, err := domain.ParseDuplicatePolicy(cfg.Exam.DuplicatePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("duplicate answer policy")
	}

	repo, closeRepo, err := openCredentialRepository(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("open credential store")
	}
	defer closeRepo()

	jwt := token.NewJWT([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	store := service.NewCredentialStore(repo, cfg.Auth.BcryptCost, log)

	e := api.NewRouter(api.Deps{
		Auth:        service.NewAuthService(store, jwt, log),
		Exam:        service.NewExamService(questions, policy, log),
		Verifier:    jwt,
		Ready:       map[string]handler.Pinger{"credentials": repo},
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("backend", cfg.Store.Backend).
			Int("questions", len(questions)).
			Str("duplicate_policy", string(policy)).
			Msg("exam api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
