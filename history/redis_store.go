package history

import (
	"context"
	"encoding/json"

	"code.cloudfoundry.org/lager"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "pass-alert:history"

//go:generate counterfeiter . ListClient

// ListClient is the part of *redis.Client the store needs.
type ListClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStore struct {
	client ListClient
	key    string
}

func NewRedisStore(client ListClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}

	return &RedisStore{
		client: client,
		key:    key,
	}
}

func (s *RedisStore) Save(ctx context.Context, logger lager.Logger, entry Entry) error {
	logger = logger.Session("redis-save", lager.Data{
		"key": s.key,
	})

	bs, err := json.Marshal(entry)
	if err != nil {
		logger.Error("failed", err)
		return err
	}

	if err := s.client.LPush(ctx, s.key, string(bs)).Err(); err != nil {
		logger.Error("failed", err)
		return err
	}

	if err := s.client.LTrim(ctx, s.key, 0, MaxEntries-1).Err(); err != nil {
		logger.Error("failed-to-trim", err)
		return err
	}

	logger.Debug("done")

	return nil
}

func (s *RedisStore) List(ctx context.Context, logger lager.Logger) ([]Entry, error) {
	logger = logger.Session("redis-list", lager.Data{
		"key": s.key,
	})

	values, err := s.client.LRange(ctx, s.key, 0, MaxEntries-1).Result()
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	entries := make([]Entry, 0, len(values))
	for i, value := range values {
		var entry Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			logger.Error("malformed-entry", err, lager.Data{
				"index": i,
			})
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *RedisStore) Clear(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("redis-clear", lager.Data{
		"key": s.key,
	})

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		logger.Error("failed", err)
		return err
	}

	logger.Info("cleared")

	return nil
}
