package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
)

// These tests swap the global TracerProvider and therefore never run in
// parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

func taskRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.OpenTelemetry(metrics))
	r.Get("/api/v1/tasks/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	})
	return r
}

func spanAttrs(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_SpanNamedAfterRoute(t *testing.T) {
	exporter := installTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/0b9f2c1e", http.NoBody)
	req.Header.Set("X-Request-ID", "req-otel-1")
	taskRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/tasks/{id}", spans[0].Name)

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "GET", attrs["http.request.method"].AsString())
	assert.Equal(t, "/api/v1/tasks/0b9f2c1e", attrs["url.path"].AsString())
	assert.Equal(t, "/api/v1/tasks/{id}", attrs["http.route"].AsString())
	assert.Equal(t, "req-otel-1", attrs["request.id"].AsString())
	assert.Equal(t, int64(http.StatusOK), attrs["http.response.status_code"].AsInt64())
	assert.Equal(t, int64(2), attrs["http.response.body.size"].AsInt64())
}

func TestOpenTelemetry_UnroutedKeepsPath(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/t1", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "DELETE /api/v1/tasks/t1", spans[0].Name)
}

func TestOpenTelemetry_SpanStatus(t *testing.T) {
	tests := []struct {
		status int
		want   codes.Code
	}{
		{status: http.StatusOK, want: codes.Unset},
		{status: http.StatusNotFound, want: codes.Unset},
		{status: http.StatusInternalServerError, want: codes.Error},
		{status: http.StatusGatewayTimeout, want: codes.Error},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			exporter := installTracer(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", http.NoBody)
			taskRouter(nil, tt.status).ServeHTTP(httptest.NewRecorder(), req)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.want, spans[0].Status.Code)
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := installTracer(t)

	const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", http.NoBody)
	req.Header.Set("traceparent", parent)
	rec := httptest.NewRecorder()
	taskRouter(nil, http.StatusOK).ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())

	assert.Contains(t, rec.Header().Get("traceparent"), "4bf92f3577b34da6a3ce929d0e0e4736")
	assert.Contains(t, rec.Header().Get("traceparent"), spans[0].SpanContext.SpanID().String())
}

func TestOpenTelemetry_RecordsRouteMetrics(t *testing.T) {
	installTracer(t)

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })
	metrics, err := telemetry.NewMetrics(mp, "middleware-test")
	require.NoError(t, err)

	router := taskRouter(metrics, http.StatusNotFound)
	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var total metricdata.Sum[int64]
	for _, md := range rm.ScopeMetrics[0].Metrics {
		if md.Name == "http.server.request.total" {
			total = md.Data.(metricdata.Sum[int64])
		}
	}
	require.Len(t, total.DataPoints, 1, "ids must not split the series")

	dp := total.DataPoints[0]
	assert.Equal(t, int64(3), dp.Value)
	route, _ := dp.Attributes.Value("http.route")
	assert.Equal(t, "/api/v1/tasks/{id}", route.AsString())
	result, _ := dp.Attributes.Value("result")
	assert.Equal(t, "error", result.AsString())
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	installTracer(t)

	rec := httptest.NewRecorder()
	taskRouter(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
}
