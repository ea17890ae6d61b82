package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

const (
	serviceCacheTTL     = 5 * time.Minute
	serviceListCacheKey = "services:all"
)

// Cache is the subset of redis operations the decorator needs
type Cache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CachedServiceRepository wraps a ServiceRepository with a redis cache for
// the full catalog listing. The catalog is small and read-heavy; writes
// invalidate the cached list. Cache failures degrade to the database.
type CachedServiceRepository struct {
	inner ServiceRepository
	cache Cache
	log   *logger.Logger
}

// NewCachedServiceRepository creates a caching decorator over inner
func NewCachedServiceRepository(inner ServiceRepository, cache Cache, log *logger.Logger) *CachedServiceRepository {
	return &CachedServiceRepository{inner: inner, cache: cache, log: log}
}

// Create creates a catalog entry and invalidates the cached list
func (r *CachedServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	if err := r.inner.Create(ctx, svc); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// GetByID retrieves a catalog entry by ID
func (r *CachedServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.inner.GetByID(ctx, id)
}

// List retrieves the catalog, serving from cache when possible
func (r *CachedServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	if cached, err := r.cache.GetString(ctx, serviceListCacheKey); err == nil && cached != "" {
		var services []*domain.Service
		if err := json.Unmarshal([]byte(cached), &services); err == nil {
			return services, nil
		}
	}

	services, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(services); err == nil {
		if err := r.cache.SetString(ctx, serviceListCacheKey, string(data), serviceCacheTTL); err != nil {
			r.log.Warn("failed to cache service list", zap.Error(err))
		}
	}

	return services, nil
}

// ListByCategory retrieves catalog entries in the given category
func (r *CachedServiceRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Service, error) {
	return r.inner.ListByCategory(ctx, category)
}

// Update updates a catalog entry and invalidates the cached list
func (r *CachedServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	if err := r.inner.Update(ctx, svc); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete deletes a catalog entry and invalidates the cached list
func (r *CachedServiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.invalidate(ctx)
	}
	return deleted, nil
}

func (r *CachedServiceRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, serviceListCacheKey); err != nil {
		r.log.Warn("failed to invalidate service cache", zap.Error(err))
	}
}
