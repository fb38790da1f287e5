package httpserver

import (
	"net/http"
	"regexp"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_meterName     = "smokeguard-server"
	_metricsPrefix = "smokeguard_server."
)

// Sensor ids and room names are free-form, so the segment after a
// collection is collapsed to keep label cardinality bounded.
var resourceRegex = regexp.MustCompile(`^/(sensors|rooms)/[^/]+`)

type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	duration, err := meter.Float64Histogram(
		_metricsPrefix+"http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		_metricsPrefix+"http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		_metricsPrefix+"http.requests.active",
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{duration: duration, total: total, active: active}, nil
}

// MetricsMiddleware records request count, latency and in-flight requests
// on the global meter provider. Instruments are created when the middleware
// is built, so the provider must be installed before that.
func MetricsMiddleware() func(http.Handler) http.Handler {
	m, err := newHTTPMetrics(otel.GetMeterProvider().Meter(_meterName))
	if err != nil {
		panic(err)
	}

	return m.middleware
}

func (m *httpMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		inFlight := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
		)
		m.active.Add(ctx, 1, inFlight)
		defer m.active.Add(ctx, -1, inFlight)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		completed := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			attribute.Int("http.status_code", wrapped.statusCode),
		)
		m.duration.Record(ctx, time.Since(start).Seconds(), completed)
		m.total.Add(ctx, 1, completed)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	return resourceRegex.ReplaceAllString(path, "/$1/_id")
}
