package communication_test

import (
	"context"
	"encoding/json"
	"errors"
	"smokeguard-server/internal/control_plane/communication"
	"smokeguard-server/internal/control_plane/domain"
	mqtt_mocks "smokeguard-server/test/unit/doubles/infra/mqtt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ControlPublisher", func() {
	var (
		ctrl      *gomock.Controller
		client    *mqtt_mocks.MockClient
		publisher *communication.ControlPublisher
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		client = mqtt_mocks.NewMockClient(ctrl)
		publisher = communication.NewControlPublisher(client, "")
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should derive the control topic from the sensor id", func() {
		Expect(publisher.Topic("sg-01")).To(Equal("smokeguard/sensors/sg-01/control"))
		Expect(communication.NewControlPublisher(client, "site/a/").Topic("x")).To(Equal("site/a/x/control"))
	})

	It("should publish sensor id, room and activation", func() {
		room := domain.RoomName("Room 3")
		client.EXPECT().
			Publish("smokeguard/sensors/sg-01/control", gomock.Any()).
			DoAndReturn(func(_ string, msg any) error {
				payload, err := json.Marshal(msg)
				Expect(err).NotTo(HaveOccurred())
				Expect(payload).To(MatchJSON(`{"sensor_id":"sg-01","room":"Room 3","is_active":true}`))
				return nil
			})

		publisher.Dispatch(context.Background(), domain.ControlCommand{SensorID: "sg-01", Room: &room, IsActive: true})
	})

	It("should send a null room when it is unknown", func() {
		client.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, msg any) error {
				payload, _ := json.Marshal(msg)
				Expect(payload).To(MatchJSON(`{"sensor_id":"sg-02","room":null,"is_active":false}`))
				return nil
			})

		publisher.Dispatch(context.Background(), domain.ControlCommand{SensorID: "sg-02"})
	})

	It("should swallow publish errors", func() {
		client.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("not connected"))

		Expect(func() {
			publisher.Dispatch(context.Background(), domain.ControlCommand{SensorID: "sg-03"})
		}).NotTo(Panic())
	})
})
