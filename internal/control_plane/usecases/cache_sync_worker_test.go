package usecases_test

import (
	"context"
	"errors"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/usecases"
	usecases_mocks "smokeguard-server/test/unit/doubles/control_plane/usecases"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CacheSyncWorker", func() {
	var (
		ctrl    *gomock.Controller
		sensors *usecases_mocks.MockSensorRepository
		cache   *usecases_mocks.MockSensorStateCache
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sensors = usecases_mocks.NewMockSensorRepository(ctrl)
		cache = usecases_mocks.NewMockSensorStateCache(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should reject an invalid schedule", func() {
		_, err := usecases.NewCacheSyncWorker(sensors, cache, "every now and then")
		Expect(err).To(HaveOccurred())
	})

	Context("Sync", func() {
		var worker *usecases.CacheSyncWorker

		BeforeEach(func() {
			var err error
			worker, err = usecases.NewCacheSyncWorker(sensors, cache, "")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should seed every stored sensor into the cache", func() {
			stored := []domain.Sensor{{ID: "a"}, {ID: "b"}}
			sensors.EXPECT().FindAllSensors(gomock.Any()).Return(stored, nil)
			cache.EXPECT().Seed(gomock.Any(), stored[0]).Return(stored[0])
			cache.EXPECT().Seed(gomock.Any(), stored[1]).Return(stored[1])

			Expect(worker.Sync(context.Background())).To(Equal(2))
		})

		It("should leave the cache alone when the store fails", func() {
			sensors.EXPECT().FindAllSensors(gomock.Any()).Return(nil, errors.New("db down"))

			Expect(worker.Sync(context.Background())).To(BeZero())
		})
	})

	Context("Run", func() {
		It("should sync on start and stop when the context ends", func() {
			worker, err := usecases.NewCacheSyncWorker(sensors, cache, "@every 1h")
			Expect(err).NotTo(HaveOccurred())

			synced := make(chan struct{})
			sensors.EXPECT().FindAllSensors(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Sensor, error) {
				close(synced)
				return nil, nil
			})

			ctx, cancel := context.WithCancel(context.Background())
			finished := make(chan struct{})
			go worker.Run(ctx, func() { close(finished) })

			Eventually(synced).WithTimeout(time.Second).Should(BeClosed())
			cancel()
			Eventually(finished).WithTimeout(2 * time.Second).Should(BeClosed())

			worker.Shutdown()
		})
	})
})
