package breach

import (
	"context"
	"errors"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "pass-alert:range:"

//go:generate counterfeiter . Cache

type Cache interface {
	// Get reports a miss as ok == false with a nil error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// StringClient is the part of *redis.Client the cache needs.
type StringClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisCache struct {
	client StringClient
}

func NewRedisCache(client StringClient) Cache {
	return &redisCache{
		client: client,
	}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

type cachingFetcher struct {
	fetcher RangeFetcher
	cache   Cache
	ttl     time.Duration
}

// NewCachingFetcher remembers ranges for ttl. A broken cache only costs the
// extra upstream request.
func NewCachingFetcher(fetcher RangeFetcher, cache Cache, ttl time.Duration) RangeFetcher {
	return &cachingFetcher{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
	}
}

func (f *cachingFetcher) FetchRange(ctx context.Context, logger lager.Logger, prefix string) ([]string, error) {
	prefix = strings.ToUpper(prefix)
	key := cacheKeyPrefix + prefix

	logger = logger.Session("cached-range", lager.Data{
		"prefix": prefix,
	})

	cached, ok, err := f.cache.Get(ctx, key)
	switch {
	case err != nil:
		logger.Error("cache-read-failed", err)
	case ok:
		logger.Debug("hit")
		return splitLines(cached), nil
	}

	lines, err := f.fetcher.FetchRange(ctx, logger, prefix)
	if err != nil {
		return nil, err
	}

	if err := f.cache.Set(ctx, key, strings.Join(lines, "\n"), f.ttl); err != nil {
		logger.Error("cache-write-failed", err)
	}

	return lines, nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
