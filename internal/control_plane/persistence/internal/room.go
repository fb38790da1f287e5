package internal

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"
)

type Room struct {
	Name        string    `json:"room" gorm:"column:room;primaryKey"`
	Temperature *float64  `json:"temperature" gorm:"column:temperature"`
	Humidity    *float64  `json:"humidity" gorm:"column:humidity"`
	PM25        *float64  `json:"pm25" gorm:"column:pm25"`
	VOC         *float64  `json:"voc" gorm:"column:voc"`
	NOx         *float64  `json:"nox" gorm:"column:nox"`
	Status      string    `json:"status" gorm:"column:status"`
	ImageURL    *string   `json:"image_url" gorm:"column:image_url"`
	LastUpdate  time.Time `json:"last_update" gorm:"column:last_update"`
}

func (Room) TableName() string {
	return "rooms"
}

var _snapshotColumns = []string{"temperature", "humidity", "pm25", "voc", "nox", "image_url"}

func (r Room) ToDomain() domain.Room {
	return domain.Room{
		Name: domain.RoomName(r.Name),
		Readings: domain.Readings{
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			PM25:        r.PM25,
			VOC:         r.VOC,
			NOx:         r.NOx,
		},
		Status:     r.Status,
		ImageURL:   r.ImageURL,
		LastUpdate: r.LastUpdate,
	}
}

func FromRoomPatch(patch domain.RoomPatch) (Room, []string) {
	room := Room{
		Name:       patch.Name.String(),
		Status:     domain.RoomStatusNormal,
		LastUpdate: patch.LastUpdate,
	}
	columns := make([]string, 0, len(_snapshotColumns)+2)

	if patch.Snapshot != nil {
		room.Temperature = patch.Snapshot.Readings.Temperature
		room.Humidity = patch.Snapshot.Readings.Humidity
		room.PM25 = patch.Snapshot.Readings.PM25
		room.VOC = patch.Snapshot.Readings.VOC
		room.NOx = patch.Snapshot.Readings.NOx
		room.ImageURL = patch.Snapshot.ImageURL
		columns = append(columns, _snapshotColumns...)
	}
	if patch.Status != nil {
		room.Status = *patch.Status
		columns = append(columns, "status")
	}
	if !patch.LastUpdate.IsZero() {
		columns = append(columns, "last_update")
	}

	return room, columns
}
