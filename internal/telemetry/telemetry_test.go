package telemetry

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExporterEnv(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		dataset string
		want    map[string]string
	}{
		{
			name: "no key",
			want: map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "https://api.honeycomb.io"},
		},
		{
			name:   "default dataset",
			apiKey: "abc",
			want: map[string]string{
				"OTEL_EXPORTER_OTLP_ENDPOINT": "https://api.honeycomb.io",
				"OTEL_EXPORTER_OTLP_HEADERS":  "x-honeycomb-team=abc,x-honeycomb-dataset=snake",
			},
		},
		{
			name:    "custom dataset",
			apiKey:  "abc",
			dataset: "snake-dev",
			want: map[string]string{
				"OTEL_EXPORTER_OTLP_ENDPOINT": "https://api.honeycomb.io",
				"OTEL_EXPORTER_OTLP_HEADERS":  "x-honeycomb-team=abc,x-honeycomb-dataset=snake-dev",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ExporterEnv(tt.apiKey, tt.dataset)); diff != "" {
				t.Errorf("ExporterEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "game.run")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span is recording")
	}
	if span.SpanContext().IsValid() {
		t.Error("noop span has a valid span context")
	}
}
