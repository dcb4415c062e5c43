package tracing

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Init wires the global trace provider. The exporter is picked from the
// environment: OTEL_GRPC_ENDPOINT wins over OTEL_JAEGER_ENDPOINT, and with
// neither set tracing stays off and the returned shutdown is a no-op.
func Init(servicename string) (shutdown func(), err error) {
	var exporter sdktrace.SpanExporter

	switch {
	case os.Getenv("OTEL_GRPC_ENDPOINT") != "":
		exporter, err = otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(os.Getenv("OTEL_GRPC_ENDPOINT")),
			otlptracegrpc.WithHeaders(map[string]string{
				"Authorization": os.Getenv("OTEL_AUTH_KEY"),
			}),
		)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("New GRPC TraceProvider")
	case os.Getenv("OTEL_JAEGER_ENDPOINT") != "":
		exporter, err = jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(os.Getenv("OTEL_JAEGER_ENDPOINT"))))
		if err != nil {
			return nil, err
		}
		log.Info().Msg("New Jaeger TraceProvider")
	default:
		return func() {}, nil
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(servicename),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return func() { provider.Shutdown(context.Background()) }, nil
}
