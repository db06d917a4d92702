package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/nba-stats-service/internal/testutil"
)

func installSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return sr
}

func TestTracingRecordsServerSpan(t *testing.T) {
	sr := installSpanRecorder(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !trace.SpanContextFromContext(r.Context()).IsValid() {
			t.Fatalf("expected span in request context")
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	rr := testutil.Serve(Tracing(next), http.MethodGet, "/nba-results", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET /games" {
		t.Fatalf("unexpected span name %s", span.Name())
	}
	if span.SpanKind() != trace.SpanKindServer {
		t.Fatalf("expected server span, got %v", span.SpanKind())
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("expected error status for 503")
	}
	found := false
	for _, kv := range span.Attributes() {
		if kv.Key == attribute.Key("http.response.status_code") && kv.Value.AsInt64() == http.StatusServiceUnavailable {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected status code attribute, got %v", span.Attributes())
	}
}

func TestTracingContinuesIncomingTrace(t *testing.T) {
	sr := installSpanRecorder(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	testutil.ServeRequest(Tracing(next), req)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("expected trace id from traceparent, got %s", got)
	}
	if spans[0].Status().Code == codes.Error {
		t.Fatalf("expected non-error status for 200")
	}
}
