package repository

import (
	"context"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

type postgresAppRepository struct {
	conn Connection
}

func NewPostgresApp(conn Connection) domain.ApplicationRepository {
	return &postgresAppRepository{conn: conn}
}

// GetAll implements domain.ApplicationRepository.
func (p *postgresAppRepository) GetAll(ctx context.Context) ([]domain.Application, error) {
	apps := make([]domain.Application, 0)
	err := pgxscan.Select(ctx, p.conn, &apps, "SELECT * FROM applications ORDER BY id")
	if err != nil {
		return apps, err
	}
	return apps, nil
}

// GetByID implements domain.ApplicationRepository.
func (p *postgresAppRepository) GetByID(ctx context.Context, id int64) (domain.Application, error) {
	var app domain.Application
	rows, err := p.conn.Query(ctx, "SELECT * FROM applications WHERE id = $1", id)
	if err != nil {
		return app, err
	}
	err = pgxscan.ScanOne(&app, rows)
	if err != nil {
		if pgxscan.NotFound(err) {
			return app, domain.ErrNotFound
		}
		return app, err
	}
	return app, nil
}

// Create implements domain.ApplicationRepository.
func (p *postgresAppRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (name, description, url, github_url, category, icon, is_live, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at`
	row := p.conn.QueryRow(ctx, query,
		app.Name, app.Description, app.URL, app.GithubURL, app.Category, app.Icon, app.IsLive)
	return row.Scan(&app.ID, &app.CreatedAt)
}

// Update implements domain.ApplicationRepository.
func (p *postgresAppRepository) Update(ctx context.Context, app *domain.Application) error {
	query := `
		UPDATE applications
		SET name = $1, description = $2, url = $3, github_url = $4, category = $5, icon = $6, is_live = $7, updated_at = NOW()
		WHERE id = $8`
	tag, err := p.conn.Exec(ctx, query,
		app.Name, app.Description, app.URL, app.GithubURL, app.Category, app.Icon, app.IsLive, app.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete implements domain.ApplicationRepository.
func (p *postgresAppRepository) Delete(ctx context.Context, id int64) error {
	tag, err := p.conn.Exec(ctx, "DELETE FROM applications WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count implements domain.ApplicationRepository.
func (p *postgresAppRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	row := p.conn.QueryRow(ctx, "SELECT COUNT(*) FROM applications")
	err := row.Scan(&count)
	return count, err
}
