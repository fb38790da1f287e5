package usecases

import (
	"context"
	"errors"
	"smokeguard-server/internal/control_plane/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/control_plane/usecases/api.go

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidRoom  = errors.New("room cannot be normalized")
)

type SensorService interface {
	AllSensors(context.Context) ([]domain.Sensor, error)
	AddSensor(ctx context.Context, id domain.ID, room string) (domain.Sensor, error)
	ToggleSensor(ctx context.Context, id domain.ID, isActive bool) (domain.ControlCommand, error)
}

type RoomService interface {
	AllRooms(context.Context) ([]domain.Room, error)
	RoomHistory(context.Context, domain.RoomName, Pagination) ([]domain.HistoryEntry, int, error)
	Alerts(context.Context, Pagination) ([]domain.Alert, int, error)
}

// IngestionService applies decoded device messages to the store and cache.
type IngestionService interface {
	Discover(context.Context, domain.ID) error
	RecordRoomReading(context.Context, RoomReading) error
	RecordHistory(context.Context, HistoryRecord) error
	RaiseAlert(context.Context, AlertReport) error
	UpdateStatus(context.Context, domain.ID, domain.ConnectivityStatus) error
}

type RoomReading struct {
	SensorID domain.ID
	Room     *string
	Readings domain.Readings
	Status   *string
	Image    *string
}

type HistoryRecord struct {
	SensorID   *domain.ID
	Room       *string
	Readings   domain.Readings
	Status     *string
	Image      *string
	ImageURL   *string
	Attributes map[string]any
}

type AlertReport struct {
	SensorID *domain.ID
	Room     *string
	Type     *string
	Readings domain.Readings
	Image    *string
}
