package main

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/passgen/config"
	"github.com/kbukum/passgen/observability"
	"github.com/kbukum/passgen/version"
)

const telemetryEnvironment = "cli"

// startTelemetry installs OTLP meter and tracer providers when an endpoint
// is configured. The returned function flushes and stops them.
func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	v := version.Get().Short()

	mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: v,
		Environment:    telemetryEnvironment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
	})
	if err != nil {
		return nil, err
	}

	tcfg := observability.DefaultTracerConfig(cfg.ServiceName)
	tcfg.ServiceVersion = v
	tcfg.Environment = telemetryEnvironment
	tcfg.Endpoint = cfg.Endpoint
	tcfg.Insecure = cfg.Insecure
	tp, err := observability.InitTracer(ctx, tcfg)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		return stderrors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
