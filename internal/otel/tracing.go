package otel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// TracingConfig holds the tracing pipeline settings, read from the standard
// OTEL_* environment variables.
type TracingConfig struct {
	Disabled        bool
	ServiceName     string
	Protocol        string
	Endpoint        string
	Sampler         string
	SamplerRatio    float64
	ExportTimeout   time.Duration
	BatchTimeoutSec int
}

// LoadTracingConfig reads the OTEL_* environment. Endpoint is informational
// only; the exporters read it themselves.
func LoadTracingConfig() TracingConfig {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return TracingConfig{
		Disabled:        os.Getenv("OTEL_SDK_DISABLED") == "true",
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "assetz"),
		Protocol:        getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		Endpoint:        endpoint,
		Sampler:         getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
		SamplerRatio:    getEnvFloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		ExportTimeout:   time.Duration(getEnvInt("OTEL_EXPORTER_OTLP_TIMEOUT_SEC", 10)) * time.Second,
		BatchTimeoutSec: getEnvInt("OTEL_BSP_SCHEDULE_DELAY_SEC", 5),
	}
}

// Init configures the global tracer provider with an OTLP exporter and
// returns its shutdown function. Exporter failures degrade to a noop
// provider rather than aborting startup.
func Init(ctx context.Context, loc *time.Location) (func(context.Context) error, error) {
	cfg := LoadTracingConfig()

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if cfg.Disabled {
		logStartup(loc, cfg, false)
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(cfg.ServiceName)),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		logError(loc, err)
		return func(context.Context) error { return nil }, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter,
			trace.WithBatchTimeout(time.Duration(cfg.BatchTimeoutSec)*time.Second)),
		trace.WithResource(res),
		trace.WithSampler(samplerFor(cfg)),
	)
	otel.SetTracerProvider(tp)

	logStartup(loc, cfg, true)
	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, cfg TracingConfig) (*otlptrace.Exporter, error) {
	switch cfg.Protocol {
	case "grpc":
		return otlptracegrpc.New(ctx, otlptracegrpc.WithTimeout(cfg.ExportTimeout))
	case "http/protobuf":
		return otlptracehttp.New(ctx, otlptracehttp.WithTimeout(cfg.ExportTimeout))
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", cfg.Protocol)
	}
}

func samplerFor(cfg TracingConfig) trace.Sampler {
	switch cfg.Sampler {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(cfg.SamplerRatio)
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(cfg.SamplerRatio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func logStartup(loc *time.Location, cfg TracingConfig, enabled bool) {
	entry := map[string]any{
		"ts":              time.Now().In(loc).Format(time.RFC3339Nano),
		"level":           "info",
		"msg":             "tracing_configured",
		"tracing_enabled": enabled,
	}
	if enabled {
		entry["otlp_protocol"] = cfg.Protocol
		entry["otlp_endpoint"] = cfg.Endpoint
		entry["sampler"] = cfg.Sampler
		entry["sampler_ratio"] = cfg.SamplerRatio
	}

	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}

func logError(loc *time.Location, err error) {
	entry := map[string]any{
		"ts":    time.Now().In(loc).Format(time.RFC3339Nano),
		"level": "error",
		"msg":   "tracing_init_failed",
		"error": err.Error(),
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
