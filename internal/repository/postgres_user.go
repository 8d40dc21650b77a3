package repository

import (
	"context"
	"errors"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

type postgresUserRepository struct {
	conn Connection
}

func NewPostgresUser(conn Connection) domain.UserRepository {
	return &postgresUserRepository{conn: conn}
}

// GetByEmail implements domain.UserRepository.
func (p *postgresUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	rows, err := p.conn.Query(ctx, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		return user, err
	}
	err = pgxscan.ScanOne(&user, rows)
	if err != nil {
		if pgxscan.NotFound(err) {
			return user, domain.ErrNotFound
		}
		return user, err
	}
	return user, nil
}

// GetByID implements domain.UserRepository.
func (p *postgresUserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	rows, err := p.conn.Query(ctx, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		return user, err
	}
	err = pgxscan.ScanOne(&user, rows)
	if err != nil {
		if pgxscan.NotFound(err) {
			return user, domain.ErrNotFound
		}
		return user, err
	}
	return user, nil
}

// Create implements domain.UserRepository.
func (p *postgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, hashed_password, is_admin, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`
	row := p.conn.QueryRow(ctx, query, user.Email, user.HashedPassword, user.IsAdmin)
	err := row.Scan(&user.ID, &user.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}
