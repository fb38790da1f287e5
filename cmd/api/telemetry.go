package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"smokeguard-server/internal/infra/node"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

type ShutdownFunc func() error

const (
	_defaultCollectorEndpoint = "localhost:4317"
	_collectorEndpointEnv     = "SMOKEGUARD_SERVER_OTELCOL_ENDPOINT"
	_serviceName              = "smokeguard-server"
	_collectPeriod            = 30 * time.Second
	_collectTimeout           = 35 * time.Second
	_minimumInterval          = time.Minute
)

func startOTel(info *node.Node) ShutdownFunc {
	endpoint := collectorEndpoint()
	slog.Info("starting OTel providers", slog.String("endpoint", endpoint))

	shutdown, err := otelStart(context.Background(), endpoint, serviceResource(info))
	if err != nil {
		panic(err)
	}

	return shutdown
}

func collectorEndpoint() string {
	if value, ok := os.LookupEnv(_collectorEndpointEnv); ok && value != "" {
		return value
	}
	return _defaultCollectorEndpoint
}

// serviceResource tags every span and metric with the node that produced it,
// so several bridge instances can be told apart in the collector.
func serviceResource(info *node.Node) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(_serviceName),
		semconv.ServiceVersionKey.String(info.Version),
		semconv.ServiceInstanceIDKey.String(info.ID),
		semconv.HostNameKey.String(info.Hostname),
	)
}

func otelStart(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(
			metricExporter,
			metric.WithTimeout(_collectTimeout),
			metric.WithInterval(_collectPeriod),
		)),
	)
	otel.SetMeterProvider(mp)

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval)); err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return errors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
	}, nil
}
