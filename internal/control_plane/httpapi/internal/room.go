package internal

import (
	"smokeguard-server/internal/control_plane/domain"
)

type ReadingsResponse struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PM25        *float64 `json:"pm25"`
	VOC         *float64 `json:"voc"`
	NOx         *float64 `json:"nox"`
}

type RoomListResponse struct {
	Status string         `json:"status"`
	Count  int            `json:"count"`
	Rooms  []RoomResponse `json:"rooms"`
}

type RoomResponse struct {
	Name string `json:"name"`
	ReadingsResponse
	Status     string  `json:"status"`
	ImageURL   *string `json:"image_url"`
	LastUpdate *string `json:"last_update"`
}

type HistoryEntryResponse struct {
	ID       string  `json:"id"`
	SensorID *string `json:"sensor_id"`
	Room     *string `json:"room"`
	ReadingsResponse
	Status     *string        `json:"status"`
	ImageURL   *string        `json:"image_url"`
	Timestamp  *string        `json:"timestamp"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type AlertResponse struct {
	ID       string  `json:"id"`
	SensorID *string `json:"sensor_id"`
	Room     *string `json:"room"`
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
	ReadingsResponse
	ImageURL  *string `json:"image_url"`
	Timestamp *string `json:"timestamp"`
}

func ToRoomResponse(room domain.Room) RoomResponse {
	return RoomResponse{
		Name:             room.Name.String(),
		ReadingsResponse: toReadingsResponse(room.Readings),
		Status:           room.Status,
		ImageURL:         room.ImageURL,
		LastUpdate:       FormatTimestamp(room.LastUpdate),
	}
}

func ToHistoryEntryResponses(entries []domain.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, HistoryEntryResponse{
			ID:               entry.ID.String(),
			SensorID:         idString(entry.SensorID),
			Room:             entry.Room,
			ReadingsResponse: toReadingsResponse(entry.Readings),
			Status:           entry.Status,
			ImageURL:         entry.ImageURL,
			Timestamp:        FormatTimestamp(entry.Timestamp),
			Attributes:       entry.Attributes,
		})
	}

	return out
}

func ToAlertResponses(alerts []domain.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		out = append(out, AlertResponse{
			ID:               alert.ID.String(),
			SensorID:         idString(alert.SensorID),
			Room:             roomString(alert.Room),
			Type:             alert.Type,
			Severity:         string(alert.Severity),
			ReadingsResponse: toReadingsResponse(alert.Readings),
			ImageURL:         alert.ImageURL,
			Timestamp:        FormatTimestamp(alert.Timestamp),
		})
	}

	return out
}

func toReadingsResponse(readings domain.Readings) ReadingsResponse {
	return ReadingsResponse{
		Temperature: readings.Temperature,
		Humidity:    readings.Humidity,
		PM25:        readings.PM25,
		VOC:         readings.VOC,
		NOx:         readings.NOx,
	}
}

func idString(id *domain.ID) *string {
	if id == nil {
		return nil
	}

	value := id.String()
	return &value
}
