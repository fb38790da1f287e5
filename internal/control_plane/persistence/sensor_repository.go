package persistence

import (
	"context"
	"errors"
	"fmt"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/persistence/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/sql"

	"gorm.io/gorm/clause"
)

func NewSensorRepository(orm sql.ORM) (*SimpleSensorRepository, error) {
	err := orm.AutoMigrate(&internal.Sensor{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSensorRepository{
		orm: orm,
	}, nil
}

var _ usecases.SensorRepository = (*SimpleSensorRepository)(nil)

type SimpleSensorRepository struct {
	orm sql.ORM
}

func (s *SimpleSensorRepository) MergeSensor(ctx context.Context, patch domain.SensorPatch) error {
	entity, columns := internal.FromSensorPatch(patch)
	err := s.orm.WithContext(ctx).
		Clauses(upsertOn("sensor_id", columns)).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("merging sensor %s: %w", patch.ID, err)
	}

	return nil
}

func (s *SimpleSensorRepository) GetSensor(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	var entity internal.Sensor
	err := s.orm.WithContext(ctx).
		Where("sensor_id = ?", id.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Sensor{}, usecases.ErrSensorNotFound
	}

	if err != nil {
		return domain.Sensor{}, fmt.Errorf("getting sensor %s: %w", id, err)
	}

	return entity.ToDomain(), nil
}

func (s *SimpleSensorRepository) FindAllSensors(ctx context.Context) ([]domain.Sensor, error) {
	var entities []internal.Sensor
	err := s.orm.WithContext(ctx).
		Order("sensor_id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("finding sensors: %w", err)
	}

	result := make([]domain.Sensor, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

// upsertOn inserts the row or, on a key conflict, overwrites only the
// given columns.
func upsertOn(key string, columns []string) clause.OnConflict {
	if len(columns) == 0 {
		return clause.OnConflict{
			Columns:   []clause.Column{{Name: key}},
			DoNothing: true,
		}
	}

	return clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		DoUpdates: clause.AssignmentColumns(columns),
	}
}
