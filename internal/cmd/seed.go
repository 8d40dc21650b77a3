package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alshawwaf/dev-hub/internal/config"
	"github.com/alshawwaf/dev-hub/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// SeedCmd seeds the database with the superadmin and the sample catalog.
func SeedCmd(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger("seed")

	pool, err := newDatabasePool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("error creating db pool: %w", err)
	}
	defer pool.Close()

	repos := newPostgresRepositories(pool)
	return Seed(ctx, logger, cfg.Seed, repos.apps, repos.users)
}

// Seed is idempotent: the superadmin is created only if missing and the
// sample applications only when the table is empty.
func Seed(ctx context.Context, logger *slog.Logger, cfg config.SeedConfig, appRepo domain.ApplicationRepository, userRepo domain.UserRepository) error {
	if cfg.AdminPassword == "" {
		return fmt.Errorf("SUPERADMIN_PASSWORD is required to seed")
	}

	_, err := userRepo.GetByEmail(ctx, cfg.AdminEmail)
	switch {
	case err == nil:
		logger.Info("superadmin already exists", "email", cfg.AdminEmail)
	case errors.Is(err, domain.ErrNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		user := domain.User{
			Email:          cfg.AdminEmail,
			HashedPassword: string(hash),
			IsAdmin:        true,
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			return fmt.Errorf("error seeding superadmin: %w", err)
		}
		logger.Info("seeded superadmin", "email", cfg.AdminEmail)
	default:
		return fmt.Errorf("error checking superadmin: %w", err)
	}

	count, err := appRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting applications: %w", err)
	}
	if count > 0 {
		logger.Info("applications already exist, skipping seed", "count", count)
		return nil
	}

	for _, app := range sampleApps(cfg.Domain) {
		app := app
		if err := appRepo.Create(ctx, &app); err != nil {
			return fmt.Errorf("error seeding application %q: %w", app.Name, err)
		}
	}
	logger.Info("seeded applications", "count", len(sampleApps(cfg.Domain)))
	return nil
}

func sampleApps(domainName string) []domain.Application {
	return []domain.Application{
		{
			Name:        "Lakera Guard Demo",
			Description: "AI security guardrails",
			URL:         fmt.Sprintf("https://lakera.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/Lakera-Demo",
			Category:    "AI Security",
			Icon:        "security",
			IsLive:      true,
		},
		{
			Name:        "Training Portal",
			Description: "AI development training platform",
			URL:         fmt.Sprintf("https://training.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/training-portal",
			Category:    "Training",
			Icon:        "training",
			IsLive:      true,
		},
		{
			Name:        "Docs to Swagger",
			Description: "Convert API docs to OpenAPI",
			URL:         fmt.Sprintf("https://swagger.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/cp-docs-to-swagger",
			Category:    "Developer Tools",
			Icon:        "swagger",
			IsLive:      true,
		},
		{
			Name:        "n8n Workflow",
			Description: "AI workflow automation platform",
			URL:         fmt.Sprintf("https://workflow.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			Category:    "Automation",
			Icon:        "n8n",
			IsLive:      true,
		},
		{
			Name:        "Open WebUI",
			Description: "Chat interface for AI models",
			URL:         fmt.Sprintf("https://chat.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			Category:    "AI Chat",
			Icon:        "chat",
			IsLive:      true,
		},
		{
			Name:        "Flowise",
			Description: "Visual LLM flow builder",
			URL:         fmt.Sprintf("https://flowise.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			Category:    "AI Development",
			Icon:        "flowise",
			IsLive:      true,
		},
		{
			Name:        "Langflow",
			Description: "Visual AI pipeline designer",
			URL:         fmt.Sprintf("https://langflow.%s", domainName),
			GithubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			Category:    "AI Development",
			Icon:        "langflow",
			IsLive:      true,
		},
	}
}
