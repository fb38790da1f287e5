package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"smokeguard-server/internal/control_plane/domain"
	"time"

	"github.com/google/uuid"
)

func NewIngestionService(
	sensors SensorRepository,
	rooms RoomRepository,
	history HistoryRepository,
	alerts AlertRepository,
	cache SensorStateCache,
	resolver *RoomResolver,
	uploader ImageUploader,
	publisher ControlPublisher,
) *SimpleIngestionService {
	return &SimpleIngestionService{
		sensors:   sensors,
		rooms:     rooms,
		history:   history,
		alerts:    alerts,
		cache:     cache,
		resolver:  resolver,
		uploader:  uploader,
		publisher: publisher,
	}
}

var _ IngestionService = &SimpleIngestionService{}

type SimpleIngestionService struct {
	sensors   SensorRepository
	rooms     RoomRepository
	history   HistoryRepository
	alerts    AlertRepository
	cache     SensorStateCache
	resolver  *RoomResolver
	uploader  ImageUploader
	publisher ControlPublisher
}

// Discover marks the sensor online and, when the store already knows its
// room, sends the assignment back to the device. Room and activation are
// never part of the write, so stored values survive.
func (s *SimpleIngestionService) Discover(ctx context.Context, id domain.ID) error {
	now := time.Now().UTC()
	online := domain.StatusOnline
	patch := domain.SensorPatch{
		ID:         id,
		Status:     &online,
		LastUpdate: now,
		CreatedAt:  &now,
	}

	if err := s.sensors.MergeSensor(ctx, patch); err != nil {
		return fmt.Errorf("merging discovered sensor %s: %w", id, err)
	}
	s.cache.Merge(ctx, patch)

	// Read back what the store holds now. Another writer may have touched
	// the row in between; the store value wins.
	stored, err := s.sensors.GetSensor(ctx, id)
	if err != nil {
		return fmt.Errorf("reading back discovered sensor %s: %w", id, err)
	}
	s.cache.Seed(ctx, stored)

	if stored.Room == nil {
		slog.Info("sensor discovered without room", slog.String("sensor_id", id.String()))
		return nil
	}

	s.publisher.Dispatch(ctx, domain.ControlCommand{
		SensorID: id,
		Room:     stored.Room,
		IsActive: stored.IsActive,
	})
	slog.Info("sensor discovered",
		slog.String("sensor_id", id.String()),
		slog.String("room", stored.Room.String()))

	return nil
}

func (s *SimpleIngestionService) RecordRoomReading(ctx context.Context, reading RoomReading) error {
	now := time.Now().UTC()

	room := domain.NormalizeRoomNamePtr(reading.Room)
	if room == nil {
		room = s.resolver.Resolve(ctx, reading.SensorID)
	}

	imageURL := s.upload(ctx, reading.Image)
	status := valueOrDefault(reading.Status, domain.RoomStatusNormal)
	sensorID := reading.SensorID

	entry := domain.HistoryEntry{
		ID:        domain.ID(uuid.NewString()),
		SensorID:  &sensorID,
		Room:      roomString(room),
		Readings:  reading.Readings,
		Status:    &status,
		ImageURL:  imageURL,
		Timestamp: now,
	}
	if err := s.history.AppendHistory(ctx, entry); err != nil {
		return fmt.Errorf("appending history for sensor %s: %w", sensorID, err)
	}

	if room == nil {
		slog.Warn("no room resolved for sensor, room update skipped", slog.String("sensor_id", sensorID.String()))
		return nil
	}

	roomPatch := domain.RoomPatch{
		Name: *room,
		Snapshot: &domain.RoomSnapshot{
			Readings: reading.Readings,
			ImageURL: imageURL,
		},
		Status:     &status,
		LastUpdate: now,
	}
	if err := s.rooms.MergeRoom(ctx, roomPatch); err != nil {
		return fmt.Errorf("merging room %s: %w", *room, err)
	}

	online := domain.StatusOnline
	sensorPatch := domain.SensorPatch{
		ID:         sensorID,
		Room:       room,
		Status:     &online,
		LastUpdate: now,
	}
	if err := s.sensors.MergeSensor(ctx, sensorPatch); err != nil {
		return fmt.Errorf("merging sensor %s: %w", sensorID, err)
	}
	s.cache.Merge(ctx, sensorPatch)

	slog.Debug("room data stored",
		slog.String("room", room.String()),
		slog.String("sensor_id", sensorID.String()))

	return nil
}

// RecordHistory appends the entry as the device sent it. An image is swapped
// for an uploaded URL only when no image_url came along; otherwise it is
// kept with the other attributes.
func (s *SimpleIngestionService) RecordHistory(ctx context.Context, record HistoryRecord) error {
	imageURL := record.ImageURL
	attributes := record.Attributes
	if record.Image != nil {
		if *record.Image != "" && (imageURL == nil || *imageURL == "") {
			imageURL = s.upload(ctx, record.Image)
		} else {
			attributes = withAttribute(attributes, "image", *record.Image)
		}
	}

	entry := domain.HistoryEntry{
		ID:         domain.ID(uuid.NewString()),
		SensorID:   record.SensorID,
		Room:       record.Room,
		Readings:   record.Readings,
		Status:     record.Status,
		ImageURL:   imageURL,
		Timestamp:  time.Now().UTC(),
		Attributes: attributes,
	}
	if err := s.history.AppendHistory(ctx, entry); err != nil {
		return fmt.Errorf("appending direct history: %w", err)
	}

	return nil
}

func (s *SimpleIngestionService) RaiseAlert(ctx context.Context, report AlertReport) error {
	now := time.Now().UTC()
	room := domain.NormalizeRoomNamePtr(report.Room)
	alertType := valueOrDefault(report.Type, domain.DefaultAlertType)

	alert := domain.Alert{
		ID:        domain.ID(uuid.NewString()),
		SensorID:  report.SensorID,
		Room:      room,
		Type:      alertType,
		Severity:  domain.SeverityCritical,
		Readings:  report.Readings,
		ImageURL:  s.upload(ctx, report.Image),
		Timestamp: now,
	}
	if err := s.alerts.AppendAlert(ctx, alert); err != nil {
		return fmt.Errorf("appending alert: %w", err)
	}

	if room == nil {
		slog.Warn("alert stored for unknown room", slog.String("type", alertType))
		return nil
	}

	err := s.rooms.MergeRoom(ctx, domain.RoomPatch{
		Name:       *room,
		Status:     &alertType,
		LastUpdate: now,
	})
	if err != nil {
		return fmt.Errorf("setting room %s status: %w", *room, err)
	}

	slog.Info("alert stored", slog.String("type", alertType), slog.String("room", room.String()))
	return nil
}

func (s *SimpleIngestionService) UpdateStatus(ctx context.Context, id domain.ID, status domain.ConnectivityStatus) error {
	patch := domain.SensorPatch{
		ID:         id,
		Status:     &status,
		LastUpdate: time.Now().UTC(),
	}

	if err := s.sensors.MergeSensor(ctx, patch); err != nil {
		return fmt.Errorf("merging status of sensor %s: %w", id, err)
	}
	s.cache.Merge(ctx, patch)

	return nil
}

func (s *SimpleIngestionService) upload(ctx context.Context, image *string) *string {
	if image == nil || *image == "" {
		return nil
	}

	return s.uploader.Upload(ctx, *image)
}

func withAttribute(attributes map[string]any, key string, value any) map[string]any {
	result := make(map[string]any, len(attributes)+1)
	for k, v := range attributes {
		result[k] = v
	}
	result[key] = value
	return result
}

func valueOrDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	return *value
}

func roomString(room *domain.RoomName) *string {
	if room == nil {
		return nil
	}

	value := room.String()
	return &value
}
