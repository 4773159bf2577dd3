// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "snake"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "snake"
)

// Honeycomb credentials as read from the environment.
const (
	EnvAPIKey  = "HONEYCOMB_SNAKE_API_KEY"
	EnvDataset = "HONEYCOMB_SNAKE_DATASET"
)

// ExporterEnv returns the standard OTEL_* variables that point the OTLP
// exporter at Honeycomb. Headers are only set when apiKey is non-empty.
func ExporterEnv(apiKey, dataset string) map[string]string {
	env := map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombEndpoint}
	if dataset == "" {
		dataset = defaultDataset
	}
	if apiKey != "" {
		env["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset)
	}
	return env
}

// Setup initializes OpenTelemetry with OTLP HTTP exporter.
// It reads configuration from standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: Honeycomb endpoint (https://api.honeycomb.io)
//   - OTEL_EXPORTER_OTLP_HEADERS: Headers including x-honeycomb-team=<api-key>
//
// Extra attributes are added to the resource, e.g. the stage count.
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, extra ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	// Own resource rather than merging with Default() to avoid schema URL conflicts
	attrs := append([]attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("telemetry.sdk.language", "go"),
		attribute.String("telemetry.sdk.name", "opentelemetry"),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	}, extra...)
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// hostname returns the system hostname, or "unknown" if it cannot be determined.
func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
