package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Pushpa2611/api-auth-gateway/internal/api/http"
	"github.com/Pushpa2611/api-auth-gateway/internal/api/http/handlers"
	"github.com/Pushpa2611/api-auth-gateway/internal/auth"
	"github.com/Pushpa2611/api-auth-gateway/internal/config"
	"github.com/Pushpa2611/api-auth-gateway/internal/identity"
	"github.com/Pushpa2611/api-auth-gateway/internal/observability"
	"github.com/Pushpa2611/api-auth-gateway/internal/persistence"
	"github.com/Pushpa2611/api-auth-gateway/internal/repository"
	"github.com/Pushpa2611/api-auth-gateway/internal/revocation"
	"github.com/Pushpa2611/api-auth-gateway/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	principalRepo := repository.NewPrincipalRepository(pg.PoolHandle())
	verifier := identity.NewVerifier(principalRepo)

	var revoked revocation.Store
	if cfg.Auth.RevocationEnabled {
		revoked = revocation.NewRedisStore(redis.Client)
		logger.Info("revocation denylist enabled")
	}

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		Store:    principalRepo,
		Verifier: verifier,
		Revoked:  revoked,
	})
	gate := auth.NewGate(authService.Codec(), principalRepo, revoked, cfg.Auth.APINamespace)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Namespace: cfg.Auth.APINamespace,
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tokens:    handlers.NewTokenHandler(authService),
		Principal: handlers.NewPrincipalHandler(),
		Gate:      gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
