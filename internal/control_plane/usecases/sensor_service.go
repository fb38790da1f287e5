package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"smokeguard-server/internal/control_plane/domain"
	"strings"
	"time"
)

var (
	errUnknown = errors.New("unknown error")
)

func NewSensorService(
	sensors SensorRepository,
	rooms RoomRepository,
	cache SensorStateCache,
	resolver *RoomResolver,
	publisher ControlPublisher,
) *SimpleSensorService {
	return &SimpleSensorService{
		sensors:   sensors,
		rooms:     rooms,
		cache:     cache,
		resolver:  resolver,
		publisher: publisher,
	}
}

var _ SensorService = &SimpleSensorService{}

type SimpleSensorService struct {
	sensors   SensorRepository
	rooms     RoomRepository
	cache     SensorStateCache
	resolver  *RoomResolver
	publisher ControlPublisher
}

func (s *SimpleSensorService) AllSensors(ctx context.Context) ([]domain.Sensor, error) {
	sensors, err := s.sensors.FindAllSensors(ctx)
	if err != nil {
		slog.Error("getting all sensors", slog.String("error", err.Error()))
		return nil, errUnknown
	}

	return sensors, nil
}

func (s *SimpleSensorService) AddSensor(ctx context.Context, id domain.ID, rawRoom string) (domain.Sensor, error) {
	if strings.TrimSpace(id.String()) == "" || strings.TrimSpace(rawRoom) == "" {
		return domain.Sensor{}, fmt.Errorf("%w: sensor_id and room are required", ErrMissingField)
	}

	room, ok := domain.NormalizeRoomName(rawRoom)
	if !ok {
		return domain.Sensor{}, fmt.Errorf("%w: %q", ErrInvalidRoom, rawRoom)
	}

	now := time.Now().UTC()
	online := domain.StatusOnline
	inactive := false
	sensorPatch := domain.SensorPatch{
		ID:         id,
		Room:       &room,
		Status:     &online,
		IsActive:   &inactive,
		LastUpdate: now,
		CreatedAt:  &now,
	}

	if err := s.sensors.MergeSensor(ctx, sensorPatch); err != nil {
		slog.Error("adding sensor",
			slog.String("sensor_id", id.String()),
			slog.String("error", err.Error()))
		return domain.Sensor{}, errUnknown
	}

	normal := domain.RoomStatusNormal
	roomPatch := domain.RoomPatch{
		Name:       room,
		Snapshot:   &domain.RoomSnapshot{},
		Status:     &normal,
		LastUpdate: now,
	}
	if err := s.rooms.MergeRoom(ctx, roomPatch); err != nil {
		slog.Error("adding room for sensor",
			slog.String("sensor_id", id.String()),
			slog.String("room", room.String()),
			slog.String("error", err.Error()))
		return domain.Sensor{}, errUnknown
	}

	sensor := s.cache.Merge(ctx, sensorPatch)
	slog.Info("sensor assigned to room",
		slog.String("sensor_id", id.String()),
		slog.String("room", room.String()))

	return sensor, nil
}

func (s *SimpleSensorService) ToggleSensor(ctx context.Context, id domain.ID, isActive bool) (domain.ControlCommand, error) {
	now := time.Now().UTC()
	room := s.resolver.Resolve(ctx, id)

	patch := domain.SensorPatch{
		ID:         id,
		IsActive:   &isActive,
		LastUpdate: now,
	}
	if err := s.sensors.MergeSensor(ctx, patch); err != nil {
		slog.Error("toggling sensor",
			slog.String("sensor_id", id.String()),
			slog.String("error", err.Error()))
		return domain.ControlCommand{}, errUnknown
	}

	if room != nil {
		err := s.rooms.MergeRoom(ctx, domain.RoomPatch{Name: *room, LastUpdate: now})
		if err != nil {
			slog.Error("touching room of toggled sensor",
				slog.String("sensor_id", id.String()),
				slog.String("room", room.String()),
				slog.String("error", err.Error()))
			return domain.ControlCommand{}, errUnknown
		}
		patch.Room = room
	}

	s.cache.Merge(ctx, patch)

	command := domain.ControlCommand{
		SensorID: id,
		Room:     room,
		IsActive: isActive,
	}
	s.publisher.Dispatch(ctx, command)

	return command, nil
}
