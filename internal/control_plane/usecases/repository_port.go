package usecases

import (
	"context"
	"errors"
	"smokeguard-server/internal/control_plane/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/control_plane/usecases/repository_port_mock.go -package=usecases

var (
	ErrSensorNotFound = errors.New("sensor not found")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

// SensorRepository stores the last known state per device. MergeSensor
// creates the record when it does not exist yet.
type SensorRepository interface {
	MergeSensor(context.Context, domain.SensorPatch) error
	GetSensor(context.Context, domain.ID) (domain.Sensor, error)
	FindAllSensors(context.Context) ([]domain.Sensor, error)
}

type RoomRepository interface {
	MergeRoom(context.Context, domain.RoomPatch) error
	FindAllRooms(context.Context) ([]domain.Room, error)
}

// HistoryRepository and AlertRepository are append-only. Finders return the
// newest entries first together with the total count.
type HistoryRepository interface {
	AppendHistory(context.Context, domain.HistoryEntry) error
	FindHistoryByRoom(context.Context, domain.RoomName, Pagination) ([]domain.HistoryEntry, int, error)
}

type AlertRepository interface {
	AppendAlert(context.Context, domain.Alert) error
	FindAlerts(context.Context, Pagination) ([]domain.Alert, int, error)
}
