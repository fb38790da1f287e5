package persistence

import (
	"context"
	"fmt"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/persistence/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/sql"

	"gorm.io/gorm/clause"
)

var _newestFirst = clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}

func NewHistoryRepository(orm sql.ORM) (*SimpleHistoryRepository, error) {
	err := orm.AutoMigrate(&internal.HistoryEntry{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleHistoryRepository{
		orm: orm,
	}, nil
}

var _ usecases.HistoryRepository = (*SimpleHistoryRepository)(nil)

// SimpleHistoryRepository only ever inserts; rows are never updated.
type SimpleHistoryRepository struct {
	orm sql.ORM
}

func (s *SimpleHistoryRepository) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	entity := internal.FromHistoryEntry(entry)
	err := s.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}

	return nil
}

func (s *SimpleHistoryRepository) FindHistoryByRoom(ctx context.Context, room domain.RoomName, pagination usecases.Pagination) ([]domain.HistoryEntry, int, error) {
	var total int64
	err := s.orm.WithContext(ctx).
		Model(&internal.HistoryEntry{}).
		Where("room = ?", room.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting history of %s: %w", room, err)
	}

	var entities []internal.HistoryEntry
	err = s.orm.WithContext(ctx).
		Where("room = ?", room.String()).
		Order(_newestFirst).
		Offset(pagination.Offset).
		Limit(limitOrAll(pagination.Limit)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("finding history of %s: %w", room, err)
	}

	result := make([]domain.HistoryEntry, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

// limitOrAll maps a non-positive limit to gorm's "no limit".
func limitOrAll(limit int) int {
	if limit <= 0 {
		return -1
	}

	return limit
}
