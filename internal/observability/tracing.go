package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/praiadomeio/app-ampm/internal/config"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Span export batching
const (
	exportBatchSize    = 256
	exportBatchTimeout = 5 * time.Second
	exportQueueSize    = 1024
	shutdownTimeout    = 5 * time.Second
)

var tracerProvider *sdktrace.TracerProvider

// InitTracer installs the OTLP tracer provider when TRACING_ENABLED is set.
// Otherwise the global no-op provider stays in place.
func InitTracer(ctx context.Context) error {
	cfg := config.AppConfig
	if !cfg.TracingEnabled {
		logging.Logger.Info("tracing is disabled")
		return nil
	}

	exporter, err := newTraceExporter(ctx, cfg.TracingEndpoint)
	if err != nil {
		return err
	}
	res, err := newTraceResource(ctx, cfg.Environment)
	if err != nil {
		return err
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(exportBatchSize),
			sdktrace.WithBatchTimeout(exportBatchTimeout),
			sdktrace.WithMaxQueueSize(exportQueueSize),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(traceSampler(cfg.TracingSampleRatio)),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logging.Logger.Info("tracer initialized",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.Float64("sample_ratio", cfg.TracingSampleRatio))
	return nil
}

func newTraceExporter(ctx context.Context, endpoint string) (*otlptrace.Exporter, error) {
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}
	return exporter, nil
}

func newTraceResource(ctx context.Context, environment string) (*resource.Resource, error) {
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceNameKey.String(logging.ServiceName),
		semconv.ServiceVersionKey.String(logging.ServiceVersion),
		semconv.DeploymentEnvironmentKey.String(environment),
	))
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

// traceSampler follows the caller's sampling decision and samples root spans at ratio
func traceSampler(ratio float64) sdktrace.Sampler {
	if ratio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// ShutdownTracer flushes pending spans and drops the provider
func ShutdownTracer() {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		logging.Logger.Error("failed to shutdown tracer provider", zap.Error(err))
	}
	tracerProvider = nil
}
