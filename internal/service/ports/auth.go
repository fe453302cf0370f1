package ports

import (
	"context"

	"github.com/russkiih/bookapp/internal/domain"
)

type AdminRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Upsert(ctx context.Context, a *domain.Admin) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
