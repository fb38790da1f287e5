package internal

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"
)

type Sensor struct {
	SensorID   string    `json:"sensor_id" gorm:"column:sensor_id;primaryKey"`
	Room       *string   `json:"room" gorm:"column:room;index"`
	Status     string    `json:"status" gorm:"column:status"`
	IsActive   bool      `json:"is_active" gorm:"column:is_active"`
	LastUpdate time.Time `json:"last_update" gorm:"column:last_update"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Sensor) TableName() string {
	return "sensors"
}

func (s Sensor) ToDomain() domain.Sensor {
	sensor := domain.Sensor{
		ID:         domain.ID(s.SensorID),
		Status:     domain.ConnectivityStatus(s.Status),
		IsActive:   s.IsActive,
		LastUpdate: s.LastUpdate,
		CreatedAt:  s.CreatedAt,
	}

	if s.Room != nil {
		room := domain.RoomName(*s.Room)
		sensor.Room = &room
	}

	return sensor
}

// FromSensorPatch builds the row inserted when the sensor does not exist
// yet, together with the columns overwritten when it does.
func FromSensorPatch(patch domain.SensorPatch) (Sensor, []string) {
	sensor := Sensor{
		SensorID:   patch.ID.String(),
		LastUpdate: patch.LastUpdate,
	}
	columns := make([]string, 0, 4)

	if patch.Room != nil {
		room := patch.Room.String()
		sensor.Room = &room
		columns = append(columns, "room")
	}
	if patch.Status != nil {
		sensor.Status = patch.Status.String()
		columns = append(columns, "status")
	}
	if patch.IsActive != nil {
		sensor.IsActive = *patch.IsActive
		columns = append(columns, "is_active")
	}
	if !patch.LastUpdate.IsZero() {
		columns = append(columns, "last_update")
	}
	if patch.CreatedAt != nil {
		sensor.CreatedAt = *patch.CreatedAt
	}

	return sensor, columns
}
