package benchmark

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cache is a single-slot TTL cache in front of a Quoter. Get never fails:
// on fetch error it serves the last known value, or zero before the first
// successful fetch. The mutex guards the slot only; concurrent callers racing
// past the TTL may both fetch, which wastes a call but stays correct.
type Cache struct {
	Source Quoter
	TTL    time.Duration
	Logger *zap.Logger

	mu        sync.Mutex
	value     float64
	fetchedAt time.Time
}

func (c *Cache) YTDReturn(ctx context.Context) (float64, error) {
	return c.Get(ctx), nil
}

func (c *Cache) Get(ctx context.Context) float64 {
	if c == nil {
		return 0
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	c.mu.Lock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < ttl {
		v := c.value
		c.mu.Unlock()
		return v
	}
	last := c.value
	c.mu.Unlock()

	v, err := c.fetch(ctx)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("benchmark fetch failed, serving stale value", zap.Float64("stale", last), zap.Error(err))
		}
		return last
	}
	return v
}

// Refresh forces a fetch regardless of TTL. Used by the cron warm job.
func (c *Cache) Refresh(ctx context.Context) error {
	if c == nil {
		return nil
	}
	_, err := c.fetch(ctx)
	return err
}

func (c *Cache) fetch(ctx context.Context) (float64, error) {
	if c.Source == nil {
		return 0, nil
	}
	v, err := c.Source.YTDReturn(ctx)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.value = v
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return v, nil
}
