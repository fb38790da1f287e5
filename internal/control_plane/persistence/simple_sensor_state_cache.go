package persistence

import (
	"context"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/usecases"
	"sync"
)

// SimpleSensorStateCache keeps sensor state in process memory.
// Not suitable for multi-instance deployments.
type SimpleSensorStateCache struct {
	sensors map[domain.ID]domain.Sensor
	mutex   sync.RWMutex
}

func NewSimpleSensorStateCache() *SimpleSensorStateCache {
	return &SimpleSensorStateCache{
		sensors: make(map[domain.ID]domain.Sensor),
	}
}

var _ usecases.SensorStateCache = (*SimpleSensorStateCache)(nil)

func (s *SimpleSensorStateCache) Get(_ context.Context, id domain.ID) (domain.Sensor, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	sensor, exists := s.sensors[id]
	return sensor, exists
}

func (s *SimpleSensorStateCache) Merge(_ context.Context, patch domain.SensorPatch) domain.Sensor {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	sensor := patch.Apply(s.sensors[patch.ID])
	s.sensors[patch.ID] = sensor
	return sensor
}

func (s *SimpleSensorStateCache) Seed(_ context.Context, stored domain.Sensor) domain.Sensor {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	var current *domain.Sensor
	if cached, exists := s.sensors[stored.ID]; exists {
		current = &cached
	}
	sensor := domain.Reconcile(current, stored)
	s.sensors[stored.ID] = sensor
	return sensor
}
