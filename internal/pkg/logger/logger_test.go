package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_LevelFallback(t *testing.T) {
	l := New("nonsense", "console")
	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info enabled")
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled")
	}
}

func TestFrom_AttachesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := WithRequestID(context.Background(), "rid-1")
	From(ctx, base).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "rid-1" {
		t.Fatalf("expected request_id=rid-1, got %v", got)
	}
}

func TestFrom_NilBase(t *testing.T) {
	if From(context.Background(), nil) == nil {
		t.Fatalf("expected nop logger")
	}
}
