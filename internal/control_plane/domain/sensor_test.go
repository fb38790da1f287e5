package domain_test

import (
	"smokeguard-server/internal/control_plane/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SensorPatch", func() {
	var (
		room   domain.RoomName
		created time.Time
		sensor  domain.Sensor
	)

	BeforeEach(func() {
		room = "Room 4"
		created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		sensor = domain.Sensor{
			ID:        "S1",
			Room:      &room,
			Status:    domain.StatusOnline,
			IsActive:  true,
			CreatedAt: created,
		}
	})

	It("should keep the room when the patch has none", func() {
		offline := domain.StatusOffline
		result := domain.SensorPatch{ID: "S1", Status: &offline}.Apply(sensor)

		Expect(result.Room).NotTo(BeNil())
		Expect(*result.Room).To(Equal(room))
		Expect(result.Status).To(Equal(domain.StatusOffline))
		Expect(result.IsActive).To(BeTrue())
	})

	It("should never move the creation time", func() {
		later := created.Add(time.Hour)
		result := domain.SensorPatch{ID: "S1", CreatedAt: &later}.Apply(sensor)

		Expect(result.CreatedAt).To(Equal(created))
	})

	It("should set the creation time on a new sensor", func() {
		result := domain.SensorPatch{ID: "S2", CreatedAt: &created}.Apply(domain.Sensor{})

		Expect(result.ID).To(Equal(domain.ID("S2")))
		Expect(result.CreatedAt).To(Equal(created))
		Expect(result.Room).To(BeNil())
	})
})

var _ = Describe("Reconcile", func() {
	var (
		stored domain.Sensor
		room   domain.RoomName
		readAt time.Time
	)

	BeforeEach(func() {
		room = "Room 1"
		readAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		stored = domain.Sensor{ID: "S1", Room: &room, IsActive: true, LastUpdate: readAt}
	})

	It("should take the stored sensor when nothing is cached", func() {
		Expect(domain.Reconcile(nil, stored)).To(Equal(stored))
	})

	It("should take the stored sensor over an older cached one", func() {
		cached := domain.Sensor{ID: "S1", LastUpdate: readAt.Add(-time.Second)}

		Expect(domain.Reconcile(&cached, stored)).To(Equal(stored))
	})

	It("should keep a cached sensor updated after the store read", func() {
		moved := domain.RoomName("Room 2")
		cached := domain.Sensor{ID: "S1", Room: &moved, LastUpdate: readAt.Add(time.Second)}

		result := domain.Reconcile(&cached, stored)
		Expect(*result.Room).To(Equal(moved))
		Expect(result.IsActive).To(BeFalse())
	})

	It("should lend the stored room to a newer cached sensor without one", func() {
		cached := domain.Sensor{ID: "S1", Status: domain.StatusOffline, LastUpdate: readAt.Add(time.Second)}

		result := domain.Reconcile(&cached, stored)
		Expect(*result.Room).To(Equal(room))
		Expect(result.Status).To(Equal(domain.StatusOffline))
	})

	It("should ignore sub-microsecond differences from the store", func() {
		cached := domain.Sensor{ID: "S1", LastUpdate: readAt.Add(400 * time.Nanosecond)}

		Expect(domain.Reconcile(&cached, stored)).To(Equal(stored))
	})
})
