package domain

import "time"

const DefaultAlertType = "Smoke Detected"

// HistoryEntry is an append-only reading snapshot. Attributes carries the
// payload keys that have no dedicated field.
type HistoryEntry struct {
	ID         ID
	SensorID   *ID
	Room       *string
	Readings   Readings
	Status     *string
	ImageURL   *string
	Timestamp  time.Time
	Attributes map[string]any
}

type Alert struct {
	ID        ID
	SensorID  *ID
	Room      *RoomName
	Type      string
	Severity  Severity
	Readings  Readings
	ImageURL  *string
	Timestamp time.Time
}
