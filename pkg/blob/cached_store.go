package blob

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "blob:"

// CachedStore wraps a Store with a redis read-through cache. Cache failures
// fall back to the inner store; the cache is never the source of truth.
type CachedStore struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
}

var _ Store = &CachedStore{}

func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.rdb != nil {
		// Cache errors and misses both read through to the inner store.
		data, err := s.rdb.Get(ctx, cacheKeyPrefix+key).Bytes()
		if err == nil {
			return data, nil
		}
	}

	data, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if s.rdb != nil {
		s.rdb.Set(ctx, cacheKeyPrefix+key, data, s.ttl)
	}
	return data, nil
}

func (s *CachedStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.inner.Put(ctx, key, data, contentType); err != nil {
		return err
	}
	if s.rdb != nil {
		s.rdb.Set(ctx, cacheKeyPrefix+key, data, s.ttl)
	}
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}
	if s.rdb != nil {
		s.rdb.Del(ctx, cacheKeyPrefix+key)
	}
	return nil
}
