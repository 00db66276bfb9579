package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is the in-process fallback when redis is not configured.
type MemoryStore struct {
	inner *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		inner: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	val, found := s.inner.Get(key)
	if !found {
		return nil, false
	}

	b, ok := val.([]byte)

	return b, ok
}

func (s *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	s.inner.Set(key, val, ttl)
}

func (s *MemoryStore) Remove(_ context.Context, key string) {
	s.inner.Delete(key)
}
