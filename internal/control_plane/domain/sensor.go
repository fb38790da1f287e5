package domain

import "time"

// Sensor is the last known state of a SmokeGuard device.
type Sensor struct {
	ID         ID
	Room       *RoomName
	Status     ConnectivityStatus
	IsActive   bool
	LastUpdate time.Time
	CreatedAt  time.Time
}

// SensorPatch describes a merge-write. Nil fields are left untouched.
type SensorPatch struct {
	ID         ID
	Room       *RoomName
	Status     *ConnectivityStatus
	IsActive   *bool
	LastUpdate time.Time
	CreatedAt  *time.Time
}

func (p SensorPatch) Apply(sensor Sensor) Sensor {
	sensor.ID = p.ID
	if p.Room != nil {
		room := *p.Room
		sensor.Room = &room
	}
	if p.Status != nil {
		sensor.Status = *p.Status
	}
	if p.IsActive != nil {
		sensor.IsActive = *p.IsActive
	}
	if !p.LastUpdate.IsZero() {
		sensor.LastUpdate = p.LastUpdate
	}
	if p.CreatedAt != nil && sensor.CreatedAt.IsZero() {
		sensor.CreatedAt = *p.CreatedAt
	}

	return sensor
}

// Reconcile decides what a cache keeps after stored was read from the
// durable store. A cached entry updated after that read wins, and only
// borrows the stored room when it has none. Otherwise stored replaces it.
func Reconcile(cached *Sensor, stored Sensor) Sensor {
	if cached == nil || !newerThanStored(cached.LastUpdate, stored.LastUpdate) {
		return stored
	}

	result := *cached
	if result.Room == nil && stored.Room != nil {
		room := *stored.Room
		result.Room = &room
	}
	return result
}

// Postgres keeps microseconds, so the stored copy of a write must not look
// older than the cached copy of the same write.
func newerThanStored(cached, stored time.Time) bool {
	return cached.Truncate(time.Microsecond).After(stored.Truncate(time.Microsecond))
}

type ControlCommand struct {
	SensorID ID
	Room     *RoomName
	IsActive bool
}
