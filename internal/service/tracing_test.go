package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stemsi/studyplanner-backend/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func attr(attrs []attribute.KeyValue, key string) string {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

// The package tracer delegates to the first global provider installed, so
// every span assertion lives in this one test.
func TestCompletionSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	svc, provider := setupPlannerService()
	if _, err := svc.Chat(context.Background(), &model.ChatRequest{Message: "How do I plan finals week?"}); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	provider.Err = errors.New("connection refused")
	if _, err := svc.Status(context.Background()); err == nil {
		t.Fatal("expected status failure")
	}

	// Validation failures never reach the provider, so no span either.
	_, _ = svc.Chat(context.Background(), &model.ChatRequest{Message: " "})

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}

	ok := spans[0]
	if ok.Name() != "llm.complete" {
		t.Errorf("span name = %q", ok.Name())
	}
	if got := attr(ok.Attributes(), "llm.use_case"); got != "chat" {
		t.Errorf("use_case = %q, want chat", got)
	}
	if got := attr(ok.Attributes(), "llm.vendor"); got != "fake" {
		t.Errorf("vendor = %q, want fake", got)
	}
	if ok.Status().Code == codes.Error {
		t.Error("successful completion marked as error")
	}

	failed := spans[1]
	if got := attr(failed.Attributes(), "llm.use_case"); got != "status" {
		t.Errorf("use_case = %q, want status", got)
	}
	if failed.Status().Code != codes.Error {
		t.Errorf("status code = %v, want Error", failed.Status().Code)
	}
	if len(failed.Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}
