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

type ServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRepo(db *dbpg.DB) *ServiceRepository {
	return &ServiceRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	query := `SELECT id, name, duration, price, created_at
			  FROM services
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err = rows.Scan(&s.ID, &s.Name, &s.Duration, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	query := `SELECT id, name, duration, price, created_at
			  FROM services
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.Service
	if err = row.Scan(&s.ID, &s.Name, &s.Duration, &s.Price, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (name, duration, price)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	if err := r.db.Master.QueryRowContext(ctx, query, s.Name, s.Duration, s.Price).
		Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("service rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrServiceNotFound
	}

	return nil
}
