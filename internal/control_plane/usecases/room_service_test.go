package usecases_test

import (
	"context"
	"errors"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/usecases"
	usecases_mocks "smokeguard-server/test/unit/doubles/control_plane/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RoomService", func() {
	var (
		ctrl    *gomock.Controller
		ctx     context.Context
		rooms   *usecases_mocks.MockRoomRepository
		history *usecases_mocks.MockHistoryRepository
		alerts  *usecases_mocks.MockAlertRepository
		service *usecases.SimpleRoomService
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		rooms = usecases_mocks.NewMockRoomRepository(ctrl)
		history = usecases_mocks.NewMockHistoryRepository(ctrl)
		alerts = usecases_mocks.NewMockAlertRepository(ctrl)
		service = usecases.NewRoomService(rooms, history, alerts)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should list rooms", func() {
		rooms.EXPECT().FindAllRooms(gomock.Any()).Return([]domain.Room{{Name: "Room 1"}}, nil)

		result, err := service.AllRooms(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(HaveLen(1))
	})

	It("should pass pagination through to the history store", func() {
		pagination := usecases.Pagination{Limit: 10, Offset: 20}
		history.EXPECT().FindHistoryByRoom(gomock.Any(), domain.RoomName("Room 1"), pagination).
			Return([]domain.HistoryEntry{{ID: "h-1"}}, 21, nil)

		entries, total, err := service.RoomHistory(ctx, "Room 1", pagination)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(total).To(Equal(21))
	})

	It("should hide alert store errors", func() {
		alerts.EXPECT().FindAlerts(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("syntax error at or near"))

		_, _, err := service.Alerts(ctx, usecases.Pagination{Limit: 5})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).NotTo(ContainSubstring("syntax"))
	})
})
