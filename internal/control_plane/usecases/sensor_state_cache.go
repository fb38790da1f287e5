package usecases

import (
	"context"
	"smokeguard-server/internal/control_plane/domain"
)

//go:generate mockgen -source=sensor_state_cache.go -destination=../../../test/unit/doubles/control_plane/usecases/sensor_state_cache_mock.go -package=usecases

// SensorStateCache is the in-process mirror of the sensors table. It is
// shared by the MQTT receive loop and the HTTP handlers.
type SensorStateCache interface {
	Get(ctx context.Context, id domain.ID) (domain.Sensor, bool)

	// Merge applies the patch under a single lock and returns the result.
	// An absent entry is created.
	Merge(ctx context.Context, patch domain.SensorPatch) domain.Sensor

	// Seed stores a sensor read from the durable store, resolved against
	// the current entry with domain.Reconcile under the same lock as Merge.
	Seed(ctx context.Context, stored domain.Sensor) domain.Sensor
}
