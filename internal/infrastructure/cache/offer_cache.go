package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
)

const activeOffersKey = "offers:active"

// OfferCache keeps the active-offer listing in Redis for a short TTL.
type OfferCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewOfferCache(rdb redis.Cmdable, ttl time.Duration) *OfferCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &OfferCache{rdb: rdb, ttl: ttl}
}

// GetActive reports false on a cache miss.
func (c *OfferCache) GetActive(ctx context.Context) ([]entity.OfferListing, bool, error) {
	var out []entity.OfferListing
	ok, err := getJSON(ctx, c.rdb, activeOffersKey, &out)
	if err != nil || !ok {
		return nil, false, err
	}
	if out == nil {
		out = []entity.OfferListing{}
	}
	return out, true, nil
}

func (c *OfferCache) SetActive(ctx context.Context, offers []entity.OfferListing) error {
	return putJSON(ctx, c.rdb, activeOffersKey, offers, c.ttl)
}

func (c *OfferCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, activeOffersKey).Err()
}
