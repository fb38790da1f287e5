package internal_test

import (
	"encoding/json"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/httpapi/internal"
	"smokeguard-server/internal/infra/utils"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Response models", func() {
	Context("FormatTimestamp", func() {
		It("renders RFC3339 in UTC", func() {
			local := time.Date(2025, 3, 1, 14, 30, 0, 0, time.FixedZone("CET", 3600))

			Expect(internal.FormatTimestamp(local)).To(Equal(utils.StringPtr("2025-03-01T13:30:00Z")))
		})

		It("reports the zero time as null", func() {
			Expect(internal.FormatTimestamp(time.Time{})).To(BeNil())
		})
	})

	Context("ToSensorResponse", func() {
		It("keeps a missing room as null", func() {
			sensor := domain.Sensor{
				ID:         "s-1",
				Status:     domain.StatusOnline,
				LastUpdate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			}

			raw, err := json.Marshal(internal.ToSensorResponse(sensor))
			Expect(err).NotTo(HaveOccurred())
			Expect(raw).To(MatchJSON(`{
				"sensor_id": "s-1",
				"room": null,
				"status": "online",
				"is_active": false,
				"last_update": "2025-03-01T00:00:00Z",
				"created_at": null
			}`))
		})
	})

	Context("ToRoomResponse", func() {
		It("flattens readings next to the room fields", func() {
			room := domain.Room{
				Name:       "Room 3",
				Readings:   domain.Readings{Temperature: utils.Ptr(21.5), PM25: utils.Ptr(8.0)},
				Status:     domain.RoomStatusNormal,
				LastUpdate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			}

			raw, err := json.Marshal(internal.ToRoomResponse(room))
			Expect(err).NotTo(HaveOccurred())
			Expect(raw).To(MatchJSON(`{
				"name": "Room 3",
				"temperature": 21.5,
				"humidity": null,
				"pm25": 8,
				"voc": null,
				"nox": null,
				"status": "Normal",
				"image_url": null,
				"last_update": "2025-03-01T00:00:00Z"
			}`))
		})
	})

	Context("ToAlertResponses", func() {
		It("returns an empty list for no alerts", func() {
			raw, err := json.Marshal(internal.ToAlertResponses(nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(raw).To(MatchJSON(`[]`))
		})

		It("maps sensor and room", func() {
			sensorID := domain.ID("s-9")
			room := domain.RoomName("Room 9")
			alerts := internal.ToAlertResponses([]domain.Alert{{
				ID:       "a-1",
				SensorID: &sensorID,
				Room:     &room,
				Type:     domain.DefaultAlertType,
				Severity: domain.SeverityCritical,
			}})

			Expect(alerts).To(HaveLen(1))
			Expect(alerts[0].SensorID).To(Equal(utils.StringPtr("s-9")))
			Expect(alerts[0].Room).To(Equal(utils.StringPtr("Room 9")))
			Expect(alerts[0].Severity).To(Equal("critical"))
		})
	})
})
