package internal

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"
)

type SensorListResponse struct {
	Status        string           `json:"status"`
	MQTTConnected bool             `json:"mqtt_connected"`
	Count         int              `json:"count"`
	Sensors       []SensorResponse `json:"sensors"`
}

type SensorResponse struct {
	SensorID   string  `json:"sensor_id"`
	Room       *string `json:"room"`
	Status     string  `json:"status"`
	IsActive   bool    `json:"is_active"`
	LastUpdate *string `json:"last_update"`
	CreatedAt  *string `json:"created_at"`
}

type SensorAddRequest struct {
	SensorID string `json:"sensor_id"`
	Room     string `json:"room"`
}

type SensorAddResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	SensorID string `json:"sensor_id"`
	Room     string `json:"room"`
}

// SensorToggleRequest keeps IsActive as a pointer so a missing field can be
// told apart from false.
type SensorToggleRequest struct {
	IsActive *bool `json:"is_active"`
}

type SensorToggleResponse struct {
	Status   string  `json:"status"`
	SensorID string  `json:"sensor_id"`
	Room     *string `json:"room"`
	IsActive bool    `json:"is_active"`
}

func ToSensorResponse(sensor domain.Sensor) SensorResponse {
	return SensorResponse{
		SensorID:   sensor.ID.String(),
		Room:       roomString(sensor.Room),
		Status:     sensor.Status.String(),
		IsActive:   sensor.IsActive,
		LastUpdate: FormatTimestamp(sensor.LastUpdate),
		CreatedAt:  FormatTimestamp(sensor.CreatedAt),
	}
}

// FormatTimestamp renders t as RFC3339 in UTC. The zero time is reported as
// null.
func FormatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func roomString(room *domain.RoomName) *string {
	if room == nil {
		return nil
	}

	value := room.String()
	return &value
}
