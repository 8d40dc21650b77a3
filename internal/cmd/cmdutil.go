package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alshawwaf/dev-hub/internal/config"
	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/alshawwaf/dev-hub/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newLogger(service string) *slog.Logger {
	env := os.Getenv("ENV")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	child := logger.With(slog.Group("service_info", slog.String("env", env), slog.String("service", service)))
	return child
}

func newDatabasePool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	maxConns := cfg.MaxConns
	if maxConns == 0 {
		maxConns = 1
	}
	err := repository.Migrate("up", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	queryChar := "?"
	if strings.Contains(cfg.URL, "?") {
		queryChar = "&"
	}
	url := fmt.Sprintf(
		"%s%vpool_max_conns=%d&pool_min_conns=%d",
		cfg.URL,
		queryChar,
		maxConns,
		2,
	)
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	// Setting the build statement cache to nil helps this work with pgbouncer
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Second
	return pgxpool.NewWithConfig(ctx, poolConfig)
}

type repositories struct {
	apps  domain.ApplicationRepository
	users domain.UserRepository
}

func newPostgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		apps:  repository.NewPostgresApp(pool),
		users: repository.NewPostgresUser(pool),
	}
}
