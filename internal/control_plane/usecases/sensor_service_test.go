package usecases_test

import (
	"context"
	"errors"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/utils"
	usecases_mocks "smokeguard-server/test/unit/doubles/control_plane/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SensorService", func() {
	var (
		ctrl      *gomock.Controller
		ctx       context.Context
		sensors   *usecases_mocks.MockSensorRepository
		rooms     *usecases_mocks.MockRoomRepository
		cache     *usecases_mocks.MockSensorStateCache
		publisher *usecases_mocks.MockControlPublisher
		service   *usecases.SimpleSensorService
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()
		sensors = usecases_mocks.NewMockSensorRepository(ctrl)
		rooms = usecases_mocks.NewMockRoomRepository(ctrl)
		cache = usecases_mocks.NewMockSensorStateCache(ctrl)
		publisher = usecases_mocks.NewMockControlPublisher(ctrl)

		service = usecases.NewSensorService(
			sensors,
			rooms,
			cache,
			usecases.NewRoomResolver(cache, sensors),
			publisher,
		)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("AllSensors", func() {
		It("should return what the store holds", func() {
			stored := []domain.Sensor{{ID: "a"}, {ID: "b"}}
			sensors.EXPECT().FindAllSensors(gomock.Any()).Return(stored, nil)

			result, err := service.AllSensors(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(stored))
		})

		It("should hide store errors", func() {
			sensors.EXPECT().FindAllSensors(gomock.Any()).Return(nil, errors.New("connection reset"))

			_, err := service.AllSensors(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).NotTo(ContainSubstring("connection reset"))
		})
	})

	Context("AddSensor", func() {
		DescribeTable("rejecting incomplete requests",
			func(id domain.ID, room string, expected error) {
				_, err := service.AddSensor(ctx, id, room)
				Expect(err).To(MatchError(expected))
			},
			Entry("missing sensor id", domain.ID(""), "3", usecases.ErrMissingField),
			Entry("missing room", domain.ID("sg-01"), "  ", usecases.ErrMissingField),
			Entry("room prefix only", domain.ID("sg-01"), "Room", usecases.ErrInvalidRoom),
		)

		When("the request is valid", func() {
			var (
				sensorPatch domain.SensorPatch
				roomPatch   domain.RoomPatch
			)

			BeforeEach(func() {
				sensors.EXPECT().MergeSensor(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch domain.SensorPatch) error {
						sensorPatch = patch
						return nil
					})
				rooms.EXPECT().MergeRoom(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch domain.RoomPatch) error {
						roomPatch = patch
						return nil
					})
				cache.EXPECT().Merge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch domain.SensorPatch) domain.Sensor {
						return patch.Apply(domain.Sensor{})
					})
			})

			It("should assign the normalized room and leave the sensor inactive", func() {
				sensor, err := service.AddSensor(ctx, "sg-01", "room 4")
				Expect(err).NotTo(HaveOccurred())

				Expect(*sensorPatch.Room).To(Equal(domain.RoomName("Room 4")))
				Expect(sensorPatch.IsActive).To(Equal(utils.Ptr(false)))
				Expect(sensorPatch.Status).To(Equal(utils.Ptr(domain.StatusOnline)))

				Expect(roomPatch.Name).To(Equal(domain.RoomName("Room 4")))
				Expect(roomPatch.Status).To(Equal(utils.Ptr(domain.RoomStatusNormal)))

				Expect(sensor.ID).To(Equal(domain.ID("sg-01")))
				Expect(sensor.IsActive).To(BeFalse())
				Expect(*sensor.Room).To(Equal(domain.RoomName("Room 4")))
			})
		})

		When("the store fails", func() {
			It("should not touch rooms or the cache", func() {
				sensors.EXPECT().MergeSensor(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

				_, err := service.AddSensor(ctx, "sg-01", "4")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Context("ToggleSensor", func() {
		When("the sensor's room is cached", func() {
			It("should persist, touch the room and dispatch the command", func() {
				room := domain.RoomName("Room 2")
				cache.EXPECT().Get(gomock.Any(), domain.ID("sg-01")).
					Return(domain.Sensor{ID: "sg-01", Room: &room}, true)
				sensors.EXPECT().MergeSensor(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch domain.SensorPatch) error {
						Expect(patch.IsActive).To(Equal(utils.Ptr(true)))
						Expect(patch.Room).To(BeNil())
						return nil
					})
				rooms.EXPECT().MergeRoom(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch domain.RoomPatch) error {
						Expect(patch.Name).To(Equal(room))
						Expect(patch.Snapshot).To(BeNil())
						Expect(patch.Status).To(BeNil())
						return nil
					})
				cache.EXPECT().Merge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch domain.SensorPatch) domain.Sensor {
						return patch.Apply(domain.Sensor{})
					})
				publisher.EXPECT().Dispatch(gomock.Any(), domain.ControlCommand{
					SensorID: "sg-01",
					Room:     &room,
					IsActive: true,
				})

				command, err := service.ToggleSensor(ctx, "sg-01", true)
				Expect(err).NotTo(HaveOccurred())
				Expect(command.IsActive).To(BeTrue())
				Expect(*command.Room).To(Equal(room))
			})
		})

		When("the sensor is unknown", func() {
			It("should still dispatch without a room", func() {
				cache.EXPECT().Get(gomock.Any(), domain.ID("ghost")).Return(domain.Sensor{}, false)
				sensors.EXPECT().GetSensor(gomock.Any(), domain.ID("ghost")).Return(domain.Sensor{}, usecases.ErrSensorNotFound)
				sensors.EXPECT().MergeSensor(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Merge(gomock.Any(), gomock.Any()).Return(domain.Sensor{ID: "ghost"})
				publisher.EXPECT().Dispatch(gomock.Any(), domain.ControlCommand{SensorID: "ghost", IsActive: false})

				command, err := service.ToggleSensor(ctx, "ghost", false)
				Expect(err).NotTo(HaveOccurred())
				Expect(command.Room).To(BeNil())
			})
		})

		When("the store write fails", func() {
			It("should not dispatch", func() {
				cache.EXPECT().Get(gomock.Any(), domain.ID("sg-01")).Return(domain.Sensor{}, false)
				sensors.EXPECT().GetSensor(gomock.Any(), domain.ID("sg-01")).Return(domain.Sensor{}, usecases.ErrSensorNotFound)
				sensors.EXPECT().MergeSensor(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

				_, err := service.ToggleSensor(ctx, "sg-01", true)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
