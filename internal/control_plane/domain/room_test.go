package domain_test

import (
	"smokeguard-server/internal/control_plane/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NormalizeRoomName", func() {
	DescribeTable("canonical names",
		func(raw string, expected domain.RoomName) {
			name, ok := domain.NormalizeRoomName(raw)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal(expected))
		},
		Entry("bare number", "3", domain.RoomName("Room 3")),
		Entry("lowercase prefix", "room 3", domain.RoomName("Room 3")),
		Entry("prefix without space", "Room3", domain.RoomName("Room 3")),
		Entry("uppercase prefix and padding", "  ROOM   12 ", domain.RoomName("Room 12")),
		Entry("already canonical", "Room 5", domain.RoomName("Room 5")),
		Entry("named room", "kitchen", domain.RoomName("Room kitchen")),
	)

	DescribeTable("absent names",
		func(raw string) {
			_, ok := domain.NormalizeRoomName(raw)
			Expect(ok).To(BeFalse())
		},
		Entry("empty", ""),
		Entry("whitespace", "   "),
		Entry("prefix only", "room"),
		Entry("prefix and padding", " Room  "),
	)

	It("should be idempotent", func() {
		for _, raw := range []string{"3", "room 3", "Room3", "ROOM x", "Roommate", " 7b "} {
			first, ok := domain.NormalizeRoomName(raw)
			Expect(ok).To(BeTrue())
			second, ok := domain.NormalizeRoomName(first.String())
			Expect(ok).To(BeTrue())
			Expect(second).To(Equal(first))
		}
	})

	It("should map a nil pointer to absent", func() {
		Expect(domain.NormalizeRoomNamePtr(nil)).To(BeNil())

		raw := "room 9"
		name := domain.NormalizeRoomNamePtr(&raw)
		Expect(name).NotTo(BeNil())
		Expect(*name).To(Equal(domain.RoomName("Room 9")))
	})
})
