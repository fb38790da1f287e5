package dto

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindDiscovery Kind = "discovery"
	KindRoomData  Kind = "room_data"
	KindHistory   Kind = "history"
	KindAlert     Kind = "alert"
	KindStatus    Kind = "status"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownKind      = errors.New("unknown message kind")
)

// Message is one decoded device message. The concrete type tells the kind.
type Message interface {
	Kind() Kind
	Validate() error
}

type Readings struct {
	Temperature *float64
	Humidity    *float64
	PM25        *float64
	VOC         *float64
	NOx         *float64
}

type DiscoveryMessage struct {
	SensorID string
}

func (DiscoveryMessage) Kind() Kind { return KindDiscovery }

func (m DiscoveryMessage) Validate() error {
	return required("sensor_id", m.SensorID)
}

type RoomDataMessage struct {
	SensorID string
	Room     *string
	Readings Readings
	Status   *string
	Image    *string
}

func (RoomDataMessage) Kind() Kind { return KindRoomData }

func (m RoomDataMessage) Validate() error {
	return required("sensor_id", m.SensorID)
}

// HistoryMessage is stored verbatim. Extra holds every key without a
// dedicated field and every known key whose value had an unexpected type.
type HistoryMessage struct {
	SensorID *string
	Room     *string
	Readings Readings
	Status   *string
	Image    *string
	ImageURL *string
	Extra    map[string]any
}

func (HistoryMessage) Kind() Kind { return KindHistory }

func (HistoryMessage) Validate() error { return nil }

// AlertMessage carries the detection type in Status, e.g. "Vape Detected".
type AlertMessage struct {
	SensorID *string
	Room     *string
	Status   *string
	Readings Readings
	Image    *string
}

func (AlertMessage) Kind() Kind { return KindAlert }

func (AlertMessage) Validate() error { return nil }

type StatusMessage struct {
	SensorID string
	Status   string
}

func (StatusMessage) Kind() Kind { return KindStatus }

func (m StatusMessage) Validate() error {
	if err := required("sensor_id", m.SensorID); err != nil {
		return err
	}

	return required("status", m.Status)
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	return nil
}
