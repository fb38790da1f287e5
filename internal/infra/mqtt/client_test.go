package mqtt_test

import (
	"smokeguard-server/internal/infra/mqtt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("MQTT Client", func() {
	var client *mqtt.SimpleClient

	ginkgo.BeforeEach(func() {
		client = mqtt.NewSimpleClient(mqtt.SimpleClientOpts{
			Broker:    "tcp://127.0.0.1:1",
			ClientID:  "smokeguard-test",
			KeepAlive: time.Second,
		})
	})

	ginkgo.Context("Publish", func() {
		ginkgo.When("the client was never connected", func() {
			ginkgo.It("should fail fast with ErrNotConnected", func() {
				err := client.Publish("smokeguard/sensors/sg-01/control", map[string]any{"is_active": true})
				gomega.Expect(err).To(gomega.MatchError(mqtt.ErrNotConnected))
			})
		})
	})

	ginkgo.Context("Connect", func() {
		ginkgo.When("no broker listens on the address", func() {
			ginkgo.It("should return an error instead of retrying", func() {
				lost, err := client.Connect()
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(lost).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Context("Disconnect", func() {
		ginkgo.It("should be safe on a client that is not connected", func() {
			gomega.Expect(client.Disconnect).NotTo(gomega.Panic())
		})
	})

	ginkgo.Context("MessageTypeAlias", func() {
		ginkgo.It("should accept paho messages", func() {
			var _ mqtt.Message = (paho.Message)(nil)
		})
	})
})
