package upstream

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rpauls02/F1StatFinder-backend/cache"
	"github.com/rpauls02/F1StatFinder-backend/models"
)

// CachedClient memoizes another Client on a disk-backed store. Entries
// are keyed by the full call signature; concurrent misses on one key
// collapse into a single upstream call. Failures are never stored and a
// stored success is never evicted by a failed refresh.
type CachedClient struct {
	inner  Client
	store  *cache.Store
	group  singleflight.Group
	logger *slog.Logger

	ttl        time.Duration // current-season entries
	archiveTTL time.Duration // completed-season entries, effectively frozen
}

func NewCachedClient(inner Client, store *cache.Store, ttl, archiveTTL time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		inner:      inner,
		store:      store,
		logger:     logger,
		ttl:        ttl,
		archiveTTL: archiveTTL,
	}
}

// seasonTTL picks the cache tier: data of completed seasons never
// changes, so it gets the long archive TTL.
func (c *CachedClient) seasonTTL(year int) time.Duration {
	if year < time.Now().UTC().Year() {
		return c.archiveTTL
	}
	return c.ttl
}

func (c *CachedClient) Seasons(ctx context.Context, limit int) ([]models.SeasonRef, error) {
	key := cache.Key("seasons", cache.Arg{Name: "limit", Value: limit})
	return memoized(c, key, c.ttl, func() ([]models.SeasonRef, error) {
		return c.inner.Seasons(ctx, limit)
	})
}

func (c *CachedClient) Circuits(ctx context.Context, limit int) ([]models.Circuit, error) {
	key := cache.Key("circuits", cache.Arg{Name: "limit", Value: limit})
	return memoized(c, key, c.ttl, func() ([]models.Circuit, error) {
		return c.inner.Circuits(ctx, limit)
	})
}

func (c *CachedClient) RaceSchedule(ctx context.Context, year int) ([]models.Round, error) {
	key := cache.Key("race_schedule", cache.Arg{Name: "year", Value: year})
	return memoized(c, key, c.seasonTTL(year), func() ([]models.Round, error) {
		return c.inner.RaceSchedule(ctx, year)
	})
}

func (c *CachedClient) RaceResults(ctx context.Context, year, round int) ([]models.ResultRow, error) {
	key := cache.Key("race_results",
		cache.Arg{Name: "year", Value: year},
		cache.Arg{Name: "round", Value: round},
	)
	return memoized(c, key, c.seasonTTL(year), func() ([]models.ResultRow, error) {
		return c.inner.RaceResults(ctx, year, round)
	})
}

func (c *CachedClient) SprintResults(ctx context.Context, year, round int) ([]models.ResultRow, error) {
	key := cache.Key("sprint_results",
		cache.Arg{Name: "year", Value: year},
		cache.Arg{Name: "round", Value: round},
	)
	return memoized(c, key, c.seasonTTL(year), func() ([]models.ResultRow, error) {
		return c.inner.SprintResults(ctx, year, round)
	})
}

func (c *CachedClient) QualifyingResults(ctx context.Context, year, round int) ([]models.ResultRow, error) {
	key := cache.Key("qualifying_results",
		cache.Arg{Name: "year", Value: year},
		cache.Arg{Name: "round", Value: round},
	)
	return memoized(c, key, c.seasonTTL(year), func() ([]models.ResultRow, error) {
		return c.inner.QualifyingResults(ctx, year, round)
	})
}

func (c *CachedClient) DriverStandings(ctx context.Context, year int) ([]models.StandingRow, error) {
	key := cache.Key("driver_standings", cache.Arg{Name: "year", Value: year})
	return memoized(c, key, c.seasonTTL(year), func() ([]models.StandingRow, error) {
		return c.inner.DriverStandings(ctx, year)
	})
}

func (c *CachedClient) ConstructorStandings(ctx context.Context, year int) ([]models.StandingRow, error) {
	key := cache.Key("constructor_standings", cache.Arg{Name: "year", Value: year})
	return memoized(c, key, c.seasonTTL(year), func() ([]models.StandingRow, error) {
		return c.inner.ConstructorStandings(ctx, year)
	})
}

func memoized[T any](c *CachedClient, key string, ttl time.Duration, call func() (T, error)) (T, error) {
	var cached T
	if ok, err := c.store.Get(key, &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		c.logger.Warn("cache lookup failed, falling through to upstream",
			slog.String("key", key), slog.Any("error", err))
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		fresh, err := call()
		if err != nil {
			return nil, err
		}
		if storeErr := c.store.Set(key, fresh, ttl); storeErr != nil {
			c.logger.Warn("failed to store cache entry",
				slog.String("key", key), slog.Any("error", storeErr))
		}
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
