package internal

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"

	"gorm.io/datatypes"
)

type HistoryEntry struct {
	ID          string            `json:"id" gorm:"column:id;primaryKey"`
	SensorID    *string           `json:"sensor_id" gorm:"column:sensor_id;index"`
	Room        *string           `json:"room" gorm:"column:room;index"`
	Temperature *float64          `json:"temperature" gorm:"column:temperature"`
	Humidity    *float64          `json:"humidity" gorm:"column:humidity"`
	PM25        *float64          `json:"pm25" gorm:"column:pm25"`
	VOC         *float64          `json:"voc" gorm:"column:voc"`
	NOx         *float64          `json:"nox" gorm:"column:nox"`
	Status      *string           `json:"status" gorm:"column:status"`
	ImageURL    *string           `json:"image_url" gorm:"column:image_url"`
	Timestamp   time.Time         `json:"timestamp" gorm:"column:timestamp;index"`
	Attributes  datatypes.JSONMap `json:"attributes,omitempty" gorm:"column:attributes"`
}

func (HistoryEntry) TableName() string {
	return "sensor_history"
}

func (h HistoryEntry) ToDomain() domain.HistoryEntry {
	entry := domain.HistoryEntry{
		ID:   domain.ID(h.ID),
		Room: h.Room,
		Readings: domain.Readings{
			Temperature: h.Temperature,
			Humidity:    h.Humidity,
			PM25:        h.PM25,
			VOC:         h.VOC,
			NOx:         h.NOx,
		},
		Status:     h.Status,
		ImageURL:   h.ImageURL,
		Timestamp:  h.Timestamp,
		Attributes: h.Attributes,
	}

	if h.SensorID != nil {
		id := domain.ID(*h.SensorID)
		entry.SensorID = &id
	}

	return entry
}

func FromHistoryEntry(value domain.HistoryEntry) HistoryEntry {
	entry := HistoryEntry{
		ID:          value.ID.String(),
		Room:        value.Room,
		Temperature: value.Readings.Temperature,
		Humidity:    value.Readings.Humidity,
		PM25:        value.Readings.PM25,
		VOC:         value.Readings.VOC,
		NOx:         value.Readings.NOx,
		Status:      value.Status,
		ImageURL:    value.ImageURL,
		Timestamp:   value.Timestamp,
	}

	if value.SensorID != nil {
		id := value.SensorID.String()
		entry.SensorID = &id
	}
	if len(value.Attributes) > 0 {
		entry.Attributes = datatypes.JSONMap(value.Attributes)
	}

	return entry
}
