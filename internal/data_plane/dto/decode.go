package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The receive time replaces any timestamp a device sends with history.
const _historyTimestamp = "timestamp"

// Decode parses a raw MQTT payload into the message variant for kind.
// Field types are read leniently: numbers may arrive as strings and
// identifiers as numbers.
func Decode(kind Kind, payload []byte) (Message, error) {
	document, err := decodeObject(payload)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindDiscovery:
		return DiscoveryMessage{
			SensorID: stringValue(document, "sensor_id"),
		}, nil
	case KindRoomData:
		return RoomDataMessage{
			SensorID: stringValue(document, "sensor_id"),
			Room:     stringField(document, "room"),
			Readings: readings(document),
			Status:   stringField(document, "status"),
			Image:    stringField(document, "image"),
		}, nil
	case KindHistory:
		return historyMessage(document), nil
	case KindAlert:
		return AlertMessage{
			SensorID: stringField(document, "sensor_id"),
			Room:     stringField(document, "room"),
			Status:   stringField(document, "status"),
			Readings: readings(document),
			Image:    stringField(document, "image"),
		}, nil
	case KindStatus:
		return StatusMessage{
			SensorID: stringValue(document, "sensor_id"),
			Status:   stringValue(document, "status"),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func decodeObject(payload []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var document map[string]any
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	if document == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformedPayload)
	}

	return document, nil
}

func readings(document map[string]any) Readings {
	return Readings{
		Temperature: floatField(document, "temperature"),
		Humidity:    floatField(document, "humidity"),
		PM25:        floatField(document, "pm25"),
		VOC:         floatField(document, "voc"),
		NOx:         floatField(document, "nox"),
	}
}

// stringField returns nil for absent, null or empty values.
func stringField(document map[string]any, key string) *string {
	var value string
	switch v := document[key].(type) {
	case string:
		value = strings.TrimSpace(v)
	case json.Number:
		value = v.String()
	case bool:
		value = strconv.FormatBool(v)
	default:
		return nil
	}

	if value == "" {
		return nil
	}

	return &value
}

func stringValue(document map[string]any, key string) string {
	if value := stringField(document, key); value != nil {
		return *value
	}

	return ""
}

func floatField(document map[string]any, key string) *float64 {
	var (
		value float64
		err   error
	)

	switch v := document[key].(type) {
	case json.Number:
		value, err = v.Float64()
	case string:
		value, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return nil
	}

	if err != nil {
		return nil
	}

	return &value
}

// historyMessage keeps the payload as sent. A known key only lands in its
// typed field when the value has the expected JSON type; anything else is
// kept untouched in Extra.
func historyMessage(document map[string]any) HistoryMessage {
	message := HistoryMessage{Extra: make(map[string]any)}
	texts := map[string]**string{
		"sensor_id": &message.SensorID,
		"room":      &message.Room,
		"status":    &message.Status,
		"image":     &message.Image,
		"image_url": &message.ImageURL,
	}
	numbers := map[string]**float64{
		"temperature": &message.Readings.Temperature,
		"humidity":    &message.Readings.Humidity,
		"pm25":        &message.Readings.PM25,
		"voc":         &message.Readings.VOC,
		"nox":         &message.Readings.NOx,
	}

	for key, value := range document {
		if key == _historyTimestamp {
			continue
		}

		field, isText := texts[key]
		reading, isNumber := numbers[key]
		if (isText || isNumber) && value == nil {
			continue
		}

		if isText {
			if text, ok := value.(string); ok {
				*field = &text
				continue
			}
		}

		if isNumber {
			if number, ok := value.(json.Number); ok {
				if f, err := number.Float64(); err == nil {
					*reading = &f
					continue
				}
			}
		}

		message.Extra[key] = plain(value)
	}

	if len(message.Extra) == 0 {
		message.Extra = nil
	}

	return message
}

// plain turns json.Number values back into float64 so the attributes look
// like a regular json.Unmarshal result.
func plain(value any) any {
	switch v := value.(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for key, nested := range v {
			v[key] = plain(nested)
		}
		return v
	case []any:
		for i, nested := range v {
			v[i] = plain(nested)
		}
		return v
	default:
		return v
	}
}
