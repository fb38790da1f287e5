package cache_test

import (
	"context"
	"smokeguard-server/internal/infra/cache"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		cacheInstance *cache.RistrettoCache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		cacheInstance.Close()
	})

	ginkgo.Context("GetSet", func() {
		ginkgo.When("setting and getting a value", func() {
			ginkgo.It("should return the value right after the write", func() {
				gomega.Expect(cacheInstance.Set(ctx, "sensor_state:s-1", "online", 0)).To(gomega.BeTrue())

				retrieved, found := cacheInstance.Get(ctx, "sensor_state:s-1")
				gomega.Expect(found).To(gomega.BeTrue())
				gomega.Expect(retrieved).To(gomega.Equal("online"))
			})
		})

		ginkgo.When("overwriting a value", func() {
			ginkgo.It("should return the latest value", func() {
				cacheInstance.Set(ctx, "k", 1, 0)
				cacheInstance.Set(ctx, "k", 2, 0)

				retrieved, found := cacheInstance.Get(ctx, "k")
				gomega.Expect(found).To(gomega.BeTrue())
				gomega.Expect(retrieved).To(gomega.Equal(2))
			})
		})

		ginkgo.When("the key was never written", func() {
			ginkgo.It("should report a miss", func() {
				retrieved, found := cacheInstance.Get(ctx, "missing")
				gomega.Expect(found).To(gomega.BeFalse())
				gomega.Expect(retrieved).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Context("GetSetWithTTL", func() {
		ginkgo.When("setting a value with TTL", func() {
			ginkgo.It("should expire the value after TTL", func() {
				ttl := 100 * time.Millisecond
				gomega.Expect(cacheInstance.Set(ctx, "ttl-key", "value", ttl)).To(gomega.BeTrue())

				_, found := cacheInstance.Get(ctx, "ttl-key")
				gomega.Expect(found).To(gomega.BeTrue())

				gomega.Eventually(func() bool {
					_, found := cacheInstance.Get(ctx, "ttl-key")
					return found
				}).WithTimeout(3 * time.Second).WithPolling(50 * time.Millisecond).Should(gomega.BeFalse())
			})
		})
	})

	ginkgo.Context("cancelled context", func() {
		ginkgo.It("should refuse reads and writes", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			gomega.Expect(cacheInstance.Set(cancelled, "k", "v", 0)).To(gomega.BeFalse())
			_, found := cacheInstance.Get(cancelled, "k")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})
})
