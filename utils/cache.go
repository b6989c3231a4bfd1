package utils

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"rentora/config"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by Store.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Store is the minimal cache surface the data services depend on.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

var (
	// CatalogStoreClient caches reference lists (booking types, areas, discount buckets).
	CatalogStoreClient Store
	// VehicleStoreClient caches per-vehicle configuration records.
	VehicleStoreClient Store
)

// InitCache initializes both cache stores. With a Redis address configured each
// store gets its own logical DB; otherwise both fall back to in-process maps.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		CatalogStoreClient = NewMemoryStore()
		VehicleStoreClient = NewMemoryStore()
		return
	}
	CatalogStoreClient = newRedisStore(config.AppConfig.RedisCatalogDB)
	VehicleStoreClient = newRedisStore(config.AppConfig.RedisVehicleDB)
}

// GetCatalogStore returns the reference-list cache store.
func GetCatalogStore() Store {
	if CatalogStoreClient == nil {
		InitCache()
	}
	return CatalogStoreClient
}

// GetVehicleStore returns the vehicle-configuration cache store.
func GetVehicleStore() Store {
	if VehicleStoreClient == nil {
		InitCache()
	}
	return VehicleStoreClient
}

func newRedisStore(db int) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
	return &RedisStore{Client: client}
}

// RedisStore adapts a redis client to the Store interface.
type RedisStore struct {
	Client *redis.Client
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	return val, err
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.Client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// MemoryStore is a process-local Store used when no Redis address is
// configured, and by tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	// Now is overridable for expiry tests.
	Now func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryStore returns an empty in-process cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && s.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = s.Now().Add(ttl)
	}
	s.entries[key] = entry
	return nil
}

func (s *MemoryStore) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
