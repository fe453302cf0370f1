package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const catalogKey = "bookapp:catalog:services"

// Catalog is a read-through Redis cache in front of the service catalog.
// Cache failures are logged and fall back to the store; mutations always
// hit the store first and then drop the cached list.
type Catalog struct {
	next   ports.ServiceCatalog
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

func NewCatalog(next ports.ServiceCatalog, rdb redis.Cmdable, ttl time.Duration, logger logger.Logger) *Catalog {
	return &Catalog{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Catalog) List(ctx context.Context) ([]*domain.Service, error) {
	data, err := c.rdb.Get(ctx, catalogKey).Bytes()
	switch {
	case err == nil:
		var services []*domain.Service
		if err = json.Unmarshal(data, &services); err == nil {
			return services, nil
		}
		c.logger.Warn("discarding corrupt catalog cache", logger.String("error", err.Error()))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("catalog cache read failed", logger.String("error", err.Error()))
	}

	services, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err = json.Marshal(services); err != nil {
		return services, nil
	}
	if err = c.rdb.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", logger.String("error", err.Error()))
	}

	return services, nil
}

// GetByID serves from the cached list and asks the store on a miss, so a
// service created by another instance is still found.
func (c *Catalog) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	services, err := c.List(ctx)
	if err == nil {
		for _, s := range services {
			if s.ID == id {
				return s, nil
			}
		}
	}

	return c.next.GetByID(ctx, id)
}

func (c *Catalog) Create(ctx context.Context, s *domain.Service) error {
	if err := c.next.Create(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *Catalog) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Error("catalog cache invalidation failed",
			logger.String("key", catalogKey),
			logger.String("error", err.Error()),
		)
	}
}

// Ping checks the Redis connection at startup.
func Ping(ctx context.Context, rdb redis.Cmdable) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
