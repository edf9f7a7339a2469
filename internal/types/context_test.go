package types

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID() = %q, want %q", got, "req-123")
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID(empty) = %q, want empty", got)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "req-9")

	ctx := WithLogger(context.Background(), logger)
	LoggerFromContext(ctx).Info("crop added")

	if !strings.Contains(buf.String(), "request_id=req-9") {
		t.Errorf("log output missing request_id: %q", buf.String())
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if LoggerFromContext(context.Background()) != slog.Default() {
		t.Error("expected slog.Default() without a stored logger")
	}
	ctx := WithLogger(context.Background(), nil)
	if LoggerFromContext(ctx) != slog.Default() {
		t.Error("expected slog.Default() for a nil stored logger")
	}
}
