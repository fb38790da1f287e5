package domain

import (
	"strings"
	"time"
)

const (
	RoomStatusNormal = "Normal"

	_roomPrefix = "room"
)

type RoomName string

func (vo RoomName) String() string {
	return string(vo)
}

// NormalizeRoomName turns "3", "room 3", "Room3" or " ROOM 3 " into "Room 3".
// It reports false when nothing is left after the prefix is removed.
func NormalizeRoomName(raw string) (RoomName, bool) {
	value := strings.TrimSpace(raw)
	if len(value) >= len(_roomPrefix) && strings.EqualFold(value[:len(_roomPrefix)], _roomPrefix) {
		value = strings.TrimSpace(value[len(_roomPrefix):])
	}

	if value == "" {
		return "", false
	}

	return RoomName("Room " + value), true
}

func NormalizeRoomNamePtr(raw *string) *RoomName {
	if raw == nil {
		return nil
	}

	name, ok := NormalizeRoomName(*raw)
	if !ok {
		return nil
	}

	return &name
}

type Readings struct {
	Temperature *float64
	Humidity    *float64
	PM25        *float64
	VOC         *float64
	NOx         *float64
}

type Room struct {
	Name       RoomName
	Readings   Readings
	Status     string
	ImageURL   *string
	LastUpdate time.Time
}

// RoomSnapshot is written as a whole: every reading and the image
// reference, null values included.
type RoomSnapshot struct {
	Readings Readings
	ImageURL *string
}

type RoomPatch struct {
	Name       RoomName
	Snapshot   *RoomSnapshot
	Status     *string
	LastUpdate time.Time
}
