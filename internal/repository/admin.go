package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, password_hash, created_at
			  FROM admins
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) Upsert(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (email, password_hash)
			  VALUES ($1, $2)
			  ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
			  RETURNING id, created_at`

	if err := r.db.Master.QueryRowContext(ctx, query, a.Email, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	return nil
}
