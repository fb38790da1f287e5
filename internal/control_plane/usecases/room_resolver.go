package usecases

import (
	"context"
	"errors"
	"log/slog"
	"smokeguard-server/internal/control_plane/domain"

	"golang.org/x/sync/singleflight"
)

func NewRoomResolver(cache SensorStateCache, sensors SensorRepository) *RoomResolver {
	return &RoomResolver{
		cache:   cache,
		sensors: sensors,
	}
}

// RoomResolver finds the room a sensor belongs to: cache first, then the
// store. It never fails; an unknown room is nil.
type RoomResolver struct {
	cache   SensorStateCache
	sensors SensorRepository
	loads   singleflight.Group
}

func (r *RoomResolver) Resolve(ctx context.Context, id domain.ID) *domain.RoomName {
	if cached, inCache := r.cache.Get(ctx, id); inCache && cached.Room != nil {
		return copyRoom(cached.Room)
	}

	// Concurrent misses for the same sensor share one store read.
	result, _, _ := r.loads.Do(id.String(), func() (any, error) {
		return r.load(ctx, id), nil
	})

	room, _ := result.(*domain.RoomName)
	return copyRoom(room)
}

// load reads the store and seeds the cache. The cache may have moved on
// while the store was read, so the reconciled entry decides the room.
func (r *RoomResolver) load(ctx context.Context, id domain.ID) *domain.RoomName {
	stored, err := r.sensors.GetSensor(ctx, id)
	if errors.Is(err, ErrSensorNotFound) {
		slog.Debug("sensor not found in store", slog.String("sensor_id", id.String()))
		return nil
	}
	if err != nil {
		slog.Warn("resolving room from store",
			slog.String("sensor_id", id.String()),
			slog.String("error", err.Error()))
		return nil
	}

	return r.cache.Seed(ctx, stored).Room
}

func copyRoom(room *domain.RoomName) *domain.RoomName {
	if room == nil {
		return nil
	}

	value := *room
	return &value
}
