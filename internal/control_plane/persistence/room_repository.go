package persistence

import (
	"context"
	"fmt"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/persistence/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/sql"
)

func NewRoomRepository(orm sql.ORM) (*SimpleRoomRepository, error) {
	err := orm.AutoMigrate(&internal.Room{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRoomRepository{
		orm: orm,
	}, nil
}

var _ usecases.RoomRepository = (*SimpleRoomRepository)(nil)

type SimpleRoomRepository struct {
	orm sql.ORM
}

func (s *SimpleRoomRepository) MergeRoom(ctx context.Context, patch domain.RoomPatch) error {
	entity, columns := internal.FromRoomPatch(patch)
	err := s.orm.WithContext(ctx).
		Clauses(upsertOn("room", columns)).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("merging room %s: %w", patch.Name, err)
	}

	return nil
}

func (s *SimpleRoomRepository) FindAllRooms(ctx context.Context) ([]domain.Room, error) {
	var entities []internal.Room
	err := s.orm.WithContext(ctx).
		Order("room").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("finding rooms: %w", err)
	}

	result := make([]domain.Room, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
