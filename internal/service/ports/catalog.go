package ports

import (
	"context"

	"github.com/russkiih/bookapp/internal/domain"
)

// ServiceCatalog is the single source of offerable services, shared by the
// public booking flow and the admin settings.
type ServiceCatalog interface {
	List(ctx context.Context) ([]*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}
