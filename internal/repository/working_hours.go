package repository

import (
	"context"
	"fmt"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WorkingHoursRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWorkingHoursRepo(db *dbpg.DB) *WorkingHoursRepository {
	return &WorkingHoursRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *WorkingHoursRepository) List(ctx context.Context) ([]*domain.WorkingHours, error) {
	query := `SELECT id, day, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_available
			  FROM working_hours
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list working hours: %w", err)
	}
	defer rows.Close()

	var res []*domain.WorkingHours
	for rows.Next() {
		var wh domain.WorkingHours
		if err = rows.Scan(&wh.ID, &wh.Day, &wh.StartTime, &wh.EndTime, &wh.IsAvailable); err != nil {
			return nil, fmt.Errorf("scan working hours: %w", err)
		}
		res = append(res, &wh)
	}

	return res, rows.Err()
}

// SetAvailability touches only is_available; day and times are immutable here.
func (r *WorkingHoursRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	res, err := r.db.Master.ExecContext(ctx,
		`UPDATE working_hours SET is_available = $2 WHERE id = $1`, id, available)
	if err != nil {
		return fmt.Errorf("update working hours: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("working hours rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrWorkingHoursNotFound
	}

	return nil
}
