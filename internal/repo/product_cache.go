package repo

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/shop-inventory/internal/models"
)

const (
	// ProductListVersionKey counts writes; the cached list lives under a key derived from it.
	ProductListVersionKey = "shop:products:version"
	productListKeyPrefix  = "shop:products:all:"
)

// CachedProductRepository serves GetAll from Redis and bumps the list version on
// every successful write. A refill always lands under the version read before
// the wrapped repository was queried, so a write racing the refill leaves the
// stale list on a key no reader asks for again. Redis errors are logged and the
// wrapped repository answers.
type CachedProductRepository struct {
	next   ProductRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedProductRepository(next ProductRepository, rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedProductRepository {
	return &CachedProductRepository{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func productListKey(version int64) string {
	return productListKeyPrefix + strconv.FormatInt(version, 10)
}

// listKey returns the key of the current list version.
func (r *CachedProductRepository) listKey(ctx context.Context) (string, error) {
	version, err := r.rdb.Get(ctx, ProductListVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return productListKey(0), nil
	}
	if err != nil {
		return "", err
	}
	return productListKey(version), nil
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	key, err := r.listKey(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("product cache read failed")
		return r.next.GetAll(ctx)
	}

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var products []models.Product
		if jerr := json.Unmarshal(raw, &products); jerr == nil {
			return products, nil
		}
		r.logger.Warn().Msg("discarding malformed product cache entry")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn().Err(err).Msg("product cache read failed")
	}

	products, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(products)
	if err != nil {
		return products, nil
	}
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Msg("product cache write failed")
	}
	return products, nil
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return created, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *CachedProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	updated, err := r.next.Update(ctx, p)
	if err != nil {
		return updated, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id int) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) invalidate(ctx context.Context) {
	if err := r.rdb.Incr(ctx, ProductListVersionKey).Err(); err != nil {
		r.logger.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
