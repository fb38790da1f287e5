package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type stubController struct{}

func (stubController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /stub", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"status": StatusSuccess})
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.When("using tracing middleware", func() {
			ginkgo.It("should add span to request context", func() {
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					span := GetSpanFromContext(r)
					gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())

					w.WriteHeader(http.StatusTeapot)
				})

				wrappedHandler := createTracingMiddleware()(testHandler)

				req := httptest.NewRequest("GET", "/test", nil)
				rec := httptest.NewRecorder()
				wrappedHandler.ServeHTTP(rec, req)

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusTeapot))
				gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			})

			ginkgo.It("should continue an incoming w3c trace", func() {
				traceID := "4bf92f3577b34da6a3ce929d0e0e4736"
				var seen string
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seen = GetSpanFromContext(r).SpanContext().TraceID().String()
				})

				req := httptest.NewRequest("GET", "/test", nil)
				req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
				rec := httptest.NewRecorder()
				createTracingMiddleware()(testHandler).ServeHTTP(rec, req)

				gomega.Expect(seen).To(gomega.Equal(traceID))
				gomega.Expect(rec.Header().Get("traceparent")).To(gomega.ContainSubstring(traceID))
			})
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a span even when no span is in context", func() {
			req := httptest.NewRequest("GET", "/test", nil)
			span := GetSpanFromContext(req)

			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("NewServer", func() {
		var handler http.Handler

		ginkgo.BeforeEach(func() {
			handler = NewServer(ServerConfig{AllowedOrigins: []string{"http://dashboard.local"}}, stubController{}).Handler()
		})

		ginkgo.It("should serve healthz", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"status":"success"}`))
		})

		ginkgo.It("should serve prometheus metrics", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("go_goroutines"))
		})

		ginkgo.It("should mount controller routes", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/stub", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should allow configured origins", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set("Origin", "http://dashboard.local")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("http://dashboard.local"))
		})

		ginkgo.It("should not allow unknown origins", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set("Origin", "http://elsewhere.local")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.BeEmpty())
		})
	})
})
