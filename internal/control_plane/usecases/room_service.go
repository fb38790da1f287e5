package usecases

import (
	"context"
	"log/slog"
	"smokeguard-server/internal/control_plane/domain"
)

func NewRoomService(
	rooms RoomRepository,
	history HistoryRepository,
	alerts AlertRepository,
) *SimpleRoomService {
	return &SimpleRoomService{
		rooms:   rooms,
		history: history,
		alerts:  alerts,
	}
}

var _ RoomService = &SimpleRoomService{}

type SimpleRoomService struct {
	rooms   RoomRepository
	history HistoryRepository
	alerts  AlertRepository
}

func (s *SimpleRoomService) AllRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.rooms.FindAllRooms(ctx)
	if err != nil {
		slog.Error("getting all rooms", slog.String("error", err.Error()))
		return nil, errUnknown
	}

	return rooms, nil
}

func (s *SimpleRoomService) RoomHistory(ctx context.Context, room domain.RoomName, pagination Pagination) ([]domain.HistoryEntry, int, error) {
	entries, total, err := s.history.FindHistoryByRoom(ctx, room, pagination)
	if err != nil {
		slog.Error("getting room history",
			slog.String("room", room.String()),
			slog.String("error", err.Error()))
		return nil, 0, errUnknown
	}

	return entries, total, nil
}

func (s *SimpleRoomService) Alerts(ctx context.Context, pagination Pagination) ([]domain.Alert, int, error) {
	alerts, total, err := s.alerts.FindAlerts(ctx, pagination)
	if err != nil {
		slog.Error("getting alerts", slog.String("error", err.Error()))
		return nil, 0, errUnknown
	}

	return alerts, total, nil
}
