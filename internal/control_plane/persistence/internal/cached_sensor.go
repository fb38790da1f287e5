package internal

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"
)

// CachedSensor is the JSON shape of a sensor inside a generic cache.
type CachedSensor struct {
	SensorID   string    `json:"sensor_id"`
	Room       *string   `json:"room,omitempty"`
	Status     string    `json:"status,omitempty"`
	IsActive   bool      `json:"is_active"`
	LastUpdate time.Time `json:"last_update"`
	CreatedAt  time.Time `json:"created_at"`
}

func (c CachedSensor) ToDomain() domain.Sensor {
	sensor := domain.Sensor{
		ID:         domain.ID(c.SensorID),
		Status:     domain.ConnectivityStatus(c.Status),
		IsActive:   c.IsActive,
		LastUpdate: c.LastUpdate,
		CreatedAt:  c.CreatedAt,
	}

	if c.Room != nil {
		room := domain.RoomName(*c.Room)
		sensor.Room = &room
	}

	return sensor
}

func FromSensor(value domain.Sensor) CachedSensor {
	cached := CachedSensor{
		SensorID:   value.ID.String(),
		Status:     value.Status.String(),
		IsActive:   value.IsActive,
		LastUpdate: value.LastUpdate,
		CreatedAt:  value.CreatedAt,
	}

	if value.Room != nil {
		room := value.Room.String()
		cached.Room = &room
	}

	return cached
}
