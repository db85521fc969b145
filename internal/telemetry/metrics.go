package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Symptom-check pipeline metrics
	SymptomCheckTotal         metric.Int64Counter
	SymptomCheckFallbackTotal metric.Int64Counter
	SymptomCheckPersistErrors metric.Int64Counter
	GatewayDurationMs         metric.Float64Histogram

	// Business metrics
	AppointmentTotal  metric.Int64Counter
	PrescriptionTotal metric.Int64Counter

	// Auth metrics
	AuthFailuresTotal metric.Int64Counter
}

// InitMetrics initializes all custom metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/clinician-ai/portal-service")

	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	symptomCheckTotal, err := meter.Int64Counter(
		"symptom_check_total",
		metric.WithDescription("Total number of symptom analyses, by outcome"),
		metric.WithUnit("{analysis}"),
	)
	if err != nil {
		return nil, err
	}

	symptomCheckFallbackTotal, err := meter.Int64Counter(
		"symptom_check_fallback_total",
		metric.WithDescription("Analyses where the model reply could not be parsed and the fallback result was served"),
		metric.WithUnit("{analysis}"),
	)
	if err != nil {
		return nil, err
	}

	symptomCheckPersistErrors, err := meter.Int64Counter(
		"symptom_check_persist_failures_total",
		metric.WithDescription("Best-effort history writes that failed after the analysis was already computed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	gatewayDurationMs, err := meter.Float64Histogram(
		"llm_gateway_duration_milliseconds",
		metric.WithDescription("LLM gateway round-trip duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	appointmentTotal, err := meter.Int64Counter(
		"appointment_total",
		metric.WithDescription("Total number of appointment operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	prescriptionTotal, err := meter.Int64Counter(
		"prescription_total",
		metric.WithDescription("Total number of prescription operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	authFailuresTotal, err := meter.Int64Counter(
		"auth_failures_total",
		metric.WithDescription("Total number of authentication failures"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		HTTPRequestsTotal:         httpRequestsTotal,
		HTTPDurationMs:            httpDurationMs,
		SymptomCheckTotal:         symptomCheckTotal,
		SymptomCheckFallbackTotal: symptomCheckFallbackTotal,
		SymptomCheckPersistErrors: symptomCheckPersistErrors,
		GatewayDurationMs:         gatewayDurationMs,
		AppointmentTotal:          appointmentTotal,
		PrescriptionTotal:         prescriptionTotal,
		AuthFailuresTotal:         authFailuresTotal,
	}, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordSymptomCheck records a completed symptom analysis
func (m *Metrics) RecordSymptomCheck(ctx context.Context, outcome string, authenticated bool) {
	m.SymptomCheckTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Bool("authenticated", authenticated),
	))
}

// RecordFallback records an analysis that degraded to the fixed fallback result
func (m *Metrics) RecordFallback(ctx context.Context) {
	m.SymptomCheckFallbackTotal.Add(ctx, 1)
}

// RecordPersistFailure records a failed best-effort history write
func (m *Metrics) RecordPersistFailure(ctx context.Context) {
	m.SymptomCheckPersistErrors.Add(ctx, 1)
}

// RecordGatewayDuration records an LLM gateway round trip
func (m *Metrics) RecordGatewayDuration(ctx context.Context, durationMs float64, statusCode int) {
	m.GatewayDurationMs.Record(ctx, durationMs, metric.WithAttributes(
		attribute.Int("http_status_code", statusCode),
	))
}

// RecordAppointmentOperation records an appointment operation metric
func (m *Metrics) RecordAppointmentOperation(ctx context.Context, operation string) {
	m.AppointmentTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordPrescriptionOperation records a prescription operation metric
func (m *Metrics) RecordPrescriptionOperation(ctx context.Context, operation string) {
	m.PrescriptionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordAuthFailure records an authentication failure metric
func (m *Metrics) RecordAuthFailure(ctx context.Context, reason string) {
	m.AuthFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
