package internal

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"
)

type Alert struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	SensorID    *string   `json:"sensor_id" gorm:"column:sensor_id;index"`
	Room        *string   `json:"room" gorm:"column:room;index"`
	Type        string    `json:"type" gorm:"column:type"`
	Severity    string    `json:"severity" gorm:"column:severity"`
	Temperature *float64  `json:"temperature" gorm:"column:temperature"`
	Humidity    *float64  `json:"humidity" gorm:"column:humidity"`
	PM25        *float64  `json:"pm25" gorm:"column:pm25"`
	VOC         *float64  `json:"voc" gorm:"column:voc"`
	NOx         *float64  `json:"nox" gorm:"column:nox"`
	ImageURL    *string   `json:"image_url" gorm:"column:image_url"`
	Timestamp   time.Time `json:"timestamp" gorm:"column:timestamp;index"`
}

func (Alert) TableName() string {
	return "alerts"
}

func (a Alert) ToDomain() domain.Alert {
	alert := domain.Alert{
		ID:       domain.ID(a.ID),
		Type:     a.Type,
		Severity: domain.Severity(a.Severity),
		Readings: domain.Readings{
			Temperature: a.Temperature,
			Humidity:    a.Humidity,
			PM25:        a.PM25,
			VOC:         a.VOC,
			NOx:         a.NOx,
		},
		ImageURL:  a.ImageURL,
		Timestamp: a.Timestamp,
	}

	if a.SensorID != nil {
		id := domain.ID(*a.SensorID)
		alert.SensorID = &id
	}
	if a.Room != nil {
		room := domain.RoomName(*a.Room)
		alert.Room = &room
	}

	return alert
}

func FromAlert(value domain.Alert) Alert {
	alert := Alert{
		ID:          value.ID.String(),
		Type:        value.Type,
		Severity:    string(value.Severity),
		Temperature: value.Readings.Temperature,
		Humidity:    value.Readings.Humidity,
		PM25:        value.Readings.PM25,
		VOC:         value.Readings.VOC,
		NOx:         value.Readings.NOx,
		ImageURL:    value.ImageURL,
		Timestamp:   value.Timestamp,
	}

	if value.SensorID != nil {
		id := value.SensorID.String()
		alert.SensorID = &id
	}
	if value.Room != nil {
		room := value.Room.String()
		alert.Room = &room
	}

	return alert
}
