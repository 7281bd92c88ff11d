// Package telemetry exports generation and viewer spans to Honeycomb over
// OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"

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
	serviceName    = "mazegen"
	serviceVersion = "0.1.0"

	// DefaultEndpoint is the Honeycomb OTLP host.
	DefaultEndpoint = "api.honeycomb.io"
)

// Settings selects where spans go. The zero value disables export.
type Settings struct {
	APIKey   string
	Dataset  string
	Endpoint string // host[:port], always reached over TLS
}

// SettingsFromEnv reads HONEYCOMB_MAZEGEN_API_KEY, HONEYCOMB_MAZEGEN_DATASET
// and HONEYCOMB_MAZEGEN_ENDPOINT through lookup (os.LookupEnv in production).
func SettingsFromEnv(lookup func(string) (string, bool)) Settings {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}
	return Settings{
		APIKey:   get("HONEYCOMB_MAZEGEN_API_KEY", ""),
		Dataset:  get("HONEYCOMB_MAZEGEN_DATASET", serviceName),
		Endpoint: get("HONEYCOMB_MAZEGEN_ENDPOINT", DefaultEndpoint),
	}
}

// Enabled reports whether an API key is present.
func (s Settings) Enabled() bool {
	return s.APIKey != ""
}

// Headers returns the Honeycomb routing headers sent with every export.
func (s Settings) Headers() map[string]string {
	h := map[string]string{"x-honeycomb-team": s.APIKey}
	if s.Dataset != "" {
		h["x-honeycomb-dataset"] = s.Dataset
	}
	return h
}

// Setup installs a batching tracer provider that exports to s.Endpoint as the
// global provider. The returned function flushes and stops it.
func Setup(ctx context.Context, s Settings) (shutdown func(context.Context) error, err error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("telemetry: no API key configured")
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(s.Endpoint),
		otlptracehttp.WithHeaders(s.Headers()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. Built from detectors only, never
// merged with resource.Default(), so schema URLs cannot conflict.
func newResource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithOSType(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}
	return res, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("mazegen/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("mazegen/noop")
}
