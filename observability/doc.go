// Package observability provides OpenTelemetry tracing and metrics for
// password generation.
//
// Instruments and spans are created from the otel global providers, which
// are no-ops until InitTracer or InitMeter installs an exporting provider.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("passgen"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("passgen"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter())
//	metrics.RecordGenerate(ctx, observability.StatusOK, attempts, elapsed)
package observability
