package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"staffhub/internal/observability"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a RecordStore backed by Redis. Each collection is one hash
// keyed by record id; singletons are plain string keys. A key prefix
// namespaces the store so isolated instances can share one Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.StoreErrors.WithLabelValues("redis", cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.StoreErrors.WithLabelValues("redis", "pipeline").Inc()
		}
		return err
	}
}

// NewRedisStore connects to Redis at addr (host:port or redis:// URL) and
// verifies the connection. Unlike a cache, the record store is mandatory, so
// an unreachable Redis is an error rather than a degraded mode.
func NewRedisStore(addr, prefix string) (*RedisStore, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

// NewRedisStoreWithClient wraps an already-connected client. The caller keeps
// ownership of the client for rate limiting and other shared uses.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Client exposes the underlying Redis client for shared concerns such as
// rate limiting.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) ReadAll(ctx context.Context, collection string) ([][]byte, error) {
	defer observability.ObserveStoreOp("redis", "read_all", time.Now())

	vals, err := s.client.HVals(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, err
	}
	records := make([][]byte, len(vals))
	for i, v := range vals {
		records[i] = []byte(v)
	}
	return records, nil
}

func (s *RedisStore) ReadOne(ctx context.Context, collection, id string) ([]byte, error) {
	defer observability.ObserveStoreOp("redis", "read_one", time.Now())

	data, err := s.client.HGet(ctx, s.key(collection), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Write(ctx context.Context, collection, id string, data []byte) error {
	defer observability.ObserveStoreOp("redis", "write", time.Now())
	return s.client.HSet(ctx, s.key(collection), id, data).Err()
}

func (s *RedisStore) Remove(ctx context.Context, collection, id string) error {
	defer observability.ObserveStoreOp("redis", "remove", time.Now())
	return s.client.HDel(ctx, s.key(collection), id).Err()
}

func (s *RedisStore) GetSingleton(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) SetSingleton(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, s.key(key), data, 0).Err()
}

func (s *RedisStore) RemoveSingleton(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
