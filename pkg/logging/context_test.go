package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/unisonlabs/unison/pkg/logging"
)

func TestFromContextDefault(t *testing.T) {
	if logging.FromContext(context.Background()) == nil {
		t.Fatal("expected default logger for empty context")
	}
	if logging.FromContext(nil) == nil { //nolint:staticcheck // nil context is part of the contract
		t.Fatal("expected default logger for nil context")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	got := logging.FromContext(ctx)

	got.Info().Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output to contain message, got %q", buf.String())
	}
}

func TestWithBrand(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithBrand(ctx, "roland")

	if logging.Brand(ctx) != "roland" {
		t.Errorf("Brand() = %q, want %q", logging.Brand(ctx), "roland")
	}

	logging.FromContext(ctx).Info().Msg("tagged")
	if !strings.Contains(buf.String(), `"brand":"roland"`) {
		t.Errorf("expected brand field in log output, got %q", buf.String())
	}
}
