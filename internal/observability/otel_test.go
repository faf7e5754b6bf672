package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/mealmesh/food-delivery-backend/internal/config"
)

func TestSetupOTelDisabledIsNoop(t *testing.T) {
	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Enabled: false}, "test")
	if err != nil {
		t.Fatalf("SetupOTel error: %v", err)
	}
	if shutdown == nil {
		t.Fatalf("shutdown func must not be nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}

func TestSetupOTelExporterError(t *testing.T) {
	orig := newExporter
	t.Cleanup(func() { newExporter = orig })

	wantErr := errors.New("exporter down")
	newExporter = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return nil, wantErr
	}

	cfg := config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "test-svc",
		SampleRatio: 1,
	}
	if _, err := SetupOTel(context.Background(), cfg, "test"); !errors.Is(err, wantErr) {
		t.Fatalf("SetupOTel error = %v, want %v", err, wantErr)
	}
}

func TestSetupOTelResourceError(t *testing.T) {
	origExp, origRes := newExporter, newResource
	t.Cleanup(func() {
		newExporter, newResource = origExp, origRes
	})

	newExporter = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return &otlptrace.Exporter{}, nil
	}
	wantErr := errors.New("resource detect failed")
	newResource = func(ctx context.Context, serviceName, version string) (*resource.Resource, error) {
		return nil, wantErr
	}

	cfg := config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "test-svc",
		SampleRatio: 0.5,
	}
	if _, err := SetupOTel(context.Background(), cfg, "test"); !errors.Is(err, wantErr) {
		t.Fatalf("SetupOTel error = %v, want %v", err, wantErr)
	}
}
