package persistence

import (
	"context"
	"fmt"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/persistence/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/sql"
)

func NewAlertRepository(orm sql.ORM) (*SimpleAlertRepository, error) {
	err := orm.AutoMigrate(&internal.Alert{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleAlertRepository{
		orm: orm,
	}, nil
}

var _ usecases.AlertRepository = (*SimpleAlertRepository)(nil)

type SimpleAlertRepository struct {
	orm sql.ORM
}

func (s *SimpleAlertRepository) AppendAlert(ctx context.Context, alert domain.Alert) error {
	entity := internal.FromAlert(alert)
	err := s.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("appending alert: %w", err)
	}

	return nil
}

func (s *SimpleAlertRepository) FindAlerts(ctx context.Context, pagination usecases.Pagination) ([]domain.Alert, int, error) {
	var total int64
	err := s.orm.WithContext(ctx).
		Model(&internal.Alert{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting alerts: %w", err)
	}

	var entities []internal.Alert
	err = s.orm.WithContext(ctx).
		Order(_newestFirst).
		Offset(pagination.Offset).
		Limit(limitOrAll(pagination.Limit)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("finding alerts: %w", err)
	}

	result := make([]domain.Alert, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
