package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/persistence/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/cache"
	"sync"
	"time"
)

// CachedSensorStateCache stores sensor state in a generic cache (Ristretto
// or Redis). Merge is serialised per process; across processes the last
// writer wins.
type CachedSensorStateCache struct {
	cache      cache.Cache
	keyPrefix  string
	defaultTTL time.Duration
	mutex      sync.Mutex
}

type CachedSensorStateCacheConfig struct {
	Cache      cache.Cache
	KeyPrefix  string
	DefaultTTL time.Duration
}

func DefaultCachedSensorStateCacheConfig() *CachedSensorStateCacheConfig {
	return &CachedSensorStateCacheConfig{
		KeyPrefix:  "sensor_state:",
		DefaultTTL: 24 * time.Hour,
	}
}

func NewCachedSensorStateCache(config *CachedSensorStateCacheConfig) (*CachedSensorStateCache, error) {
	if config == nil {
		config = DefaultCachedSensorStateCacheConfig()
	}
	if config.Cache == nil {
		return nil, fmt.Errorf("cache instance is required")
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = DefaultCachedSensorStateCacheConfig().KeyPrefix
	}

	slog.Info("sensor state cache initialized",
		slog.String("key_prefix", config.KeyPrefix),
		slog.Duration("default_ttl", config.DefaultTTL))

	return &CachedSensorStateCache{
		cache:      config.Cache,
		keyPrefix:  config.KeyPrefix,
		defaultTTL: config.DefaultTTL,
	}, nil
}

var _ usecases.SensorStateCache = (*CachedSensorStateCache)(nil)

func (s *CachedSensorStateCache) Get(ctx context.Context, id domain.ID) (domain.Sensor, bool) {
	value, found := s.cache.Get(ctx, s.key(id))
	if !found {
		return domain.Sensor{}, false
	}

	cached, err := decodeCachedSensor(value)
	if err != nil {
		slog.Error("decoding cached sensor",
			slog.String("sensor_id", id.String()),
			slog.String("error", err.Error()))
		return domain.Sensor{}, false
	}

	return cached.ToDomain(), true
}

func (s *CachedSensorStateCache) Merge(ctx context.Context, patch domain.SensorPatch) domain.Sensor {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, _ := s.Get(ctx, patch.ID)
	sensor := patch.Apply(current)
	s.set(ctx, sensor)
	return sensor
}

func (s *CachedSensorStateCache) Seed(ctx context.Context, stored domain.Sensor) domain.Sensor {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var current *domain.Sensor
	if cached, found := s.Get(ctx, stored.ID); found {
		current = &cached
	}
	sensor := domain.Reconcile(current, stored)
	s.set(ctx, sensor)
	return sensor
}

func (s *CachedSensorStateCache) set(ctx context.Context, sensor domain.Sensor) {
	if !s.cache.Set(ctx, s.key(sensor.ID), internal.FromSensor(sensor), s.defaultTTL) {
		slog.Warn("sensor state not cached", slog.String("sensor_id", sensor.ID.String()))
	}
}

func (s *CachedSensorStateCache) key(id domain.ID) string {
	return s.keyPrefix + id.String()
}

func decodeCachedSensor(value any) (internal.CachedSensor, error) {
	var cached internal.CachedSensor
	switch v := value.(type) {
	case internal.CachedSensor:
		return v, nil
	case string:
		if err := json.Unmarshal([]byte(v), &cached); err != nil {
			return cached, fmt.Errorf("unmarshaling cached sensor: %w", err)
		}
	case map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return cached, fmt.Errorf("marshaling cached sensor for conversion: %w", err)
		}
		if err := json.Unmarshal(data, &cached); err != nil {
			return cached, fmt.Errorf("unmarshaling cached sensor: %w", err)
		}
	default:
		return cached, fmt.Errorf("unexpected value type in cache: %T", value)
	}

	return cached, nil
}
