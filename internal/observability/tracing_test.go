package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracingConfig{}, "svc", "0.0.0", zerolog.Nop())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestSetup_StdoutExporter(t *testing.T) {
	cfg := config.TracingConfig{Enabled: true, SampleRatio: 1, Environment: "test"}
	shutdown, err := Setup(context.Background(), cfg, "svc", "0.0.0", zerolog.Nop())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
