package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/passgen/logger"
)

// Generation outcome labels.
const (
	StatusOK        = "ok"
	StatusTooShort  = "length_too_short"
	StatusExhausted = "exhausted"
	StatusCanceled  = "canceled"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns the passgen meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics holds the generator's instruments. A nil *Metrics records nothing.
type Metrics struct {
	generateTotal    metric.Int64Counter
	generateAttempts metric.Int64Histogram
	generateDuration metric.Float64Histogram
	substitutions    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	generateTotal, err := meter.Int64Counter("passgen.generate.total",
		metric.WithDescription("Generate calls by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating passgen.generate.total counter: %w", err)
	}

	generateAttempts, err := meter.Int64Histogram("passgen.generate.attempts",
		metric.WithDescription("Candidates drawn per Generate call"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating passgen.generate.attempts histogram: %w", err)
	}

	generateDuration, err := meter.Float64Histogram("passgen.generate.duration",
		metric.WithDescription("Duration of Generate calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating passgen.generate.duration histogram: %w", err)
	}

	substitutions, err := meter.Int64Counter("passgen.dedup.substitutions",
		metric.WithDescription("Duplicate characters replaced during deduplication"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating passgen.dedup.substitutions counter: %w", err)
	}

	return &Metrics{
		generateTotal:    generateTotal,
		generateAttempts: generateAttempts,
		generateDuration: generateDuration,
		substitutions:    substitutions,
	}, nil
}

// RecordGenerate records the outcome of one Generate call.
func (m *Metrics) RecordGenerate(ctx context.Context, status string, attempts int, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrStatus, status))
	m.generateTotal.Add(ctx, 1, attrs)
	m.generateAttempts.Record(ctx, int64(attempts), attrs)
	m.generateDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordSubstitutions records characters replaced by deduplication.
func (m *Metrics) RecordSubstitutions(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.substitutions.Add(ctx, int64(n))
}
