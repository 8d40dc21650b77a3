package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alshawwaf/dev-hub/internal/config"
	"github.com/alshawwaf/dev-hub/internal/repository"
	serverPkg "github.com/alshawwaf/dev-hub/internal/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// demoSecret signs tokens in demo mode only, where nothing durable is at
// stake.
const demoSecret = "devhub-demo-secret"

func ServerCmd(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger("api")

	var repos repositories
	secret := cfg.Auth.JWTSecret
	if cfg.Server.Demo {
		repos = repositories{apps: repository.NewMemoryApp(), users: repository.NewMemoryUser()}
		if secret == "" {
			secret = demoSecret
		}
		if cfg.Seed.AdminPassword == "" {
			cfg.Seed.AdminPassword = "demo"
		}
		if err := Seed(ctx, logger, cfg.Seed, repos.apps, repos.users); err != nil {
			return fmt.Errorf("error seeding demo data: %w", err)
		}
		logger.Info("running in demo mode, data is not persisted")
	} else {
		pool, err := newDatabasePool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("error creating db pool: %w", err)
		}
		defer pool.Close()
		repos = newPostgresRepositories(pool)
	}

	tokens := serverPkg.NewTokenIssuer(secret, cfg.Auth.TokenTTL)
	server := serverPkg.NewServer(logger, tokens, repos.apps, repos.users)
	srv := server.Server(cfg.Server.Port)

	// metrics
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.MetricsPort), mux)
	}()

	go func() {
		_ = srv.ListenAndServe()
	}()
	logger.Info("started server", slog.Int("port", cfg.Server.Port))
	<-ctx.Done()
	_ = srv.Shutdown(ctx)
	return nil
}
