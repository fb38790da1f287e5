package imagehost_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"smokeguard-server/internal/infra/imagehost"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ImgBBClient", func() {
	var (
		ctx      context.Context
		server   *httptest.Server
		requests atomic.Int32
		handler  http.HandlerFunc
	)

	BeforeEach(func() {
		ctx = context.Background()
		requests.Store(0)
		handler = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			handler(w, r)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	newClient := func(apiKey string) *imagehost.ImgBBClient {
		return imagehost.NewImgBBClient(imagehost.ImgBBConfig{
			APIKey:   apiKey,
			Endpoint: server.URL,
			Timeout:  time.Second,
		})
	}

	It("should post the key and image as a form and return the hosted url", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.Header.Get("Content-Type")).To(Equal("application/x-www-form-urlencoded"))
			Expect(r.ParseForm()).To(Succeed())
			Expect(r.PostForm.Get("key")).To(Equal("secret"))
			Expect(r.PostForm.Get("image")).To(Equal("aGVsbG8="))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"url":"https://i.ibb.co/abc/photo.jpg"},"success":true}`))
		}

		hosted := newClient("secret").Upload(ctx, "aGVsbG8=")
		Expect(hosted).NotTo(BeNil())
		Expect(*hosted).To(Equal("https://i.ibb.co/abc/photo.jpg"))
	})

	It("should not call the service for an empty image", func() {
		Expect(newClient("secret").Upload(ctx, "")).To(BeNil())
		Expect(requests.Load()).To(BeZero())
	})

	It("should not call the service without an api key", func() {
		Expect(newClient("").Upload(ctx, "aGVsbG8=")).To(BeNil())
		Expect(requests.Load()).To(BeZero())
	})

	It("should return nil on a non-2xx response", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid API v1 key."}}`))
		}

		Expect(newClient("secret").Upload(ctx, "aGVsbG8=")).To(BeNil())
		Expect(requests.Load()).To(BeNumerically("==", 1))
	})

	It("should return nil when the response has no url", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data":{},"success":true}`))
		}

		Expect(newClient("secret").Upload(ctx, "aGVsbG8=")).To(BeNil())
	})

	It("should give up when the service is slower than the timeout", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(3 * time.Second):
			case <-r.Context().Done():
			}
		}

		Expect(newClient("secret").Upload(ctx, "aGVsbG8=")).To(BeNil())
	})
})
