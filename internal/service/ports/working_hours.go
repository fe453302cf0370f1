package ports

import (
	"context"

	"github.com/russkiih/bookapp/internal/domain"
)

type WorkingHoursRepo interface {
	List(ctx context.Context) ([]*domain.WorkingHours, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}
