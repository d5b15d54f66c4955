package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev"} {
		l, err := NewLogger(env)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", env, err)
		}
		if l == nil {
			t.Fatalf("%s: nil logger", env)
		}
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	if _, err := NewLogger("staging"); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	if _, err := NewLogger("prod", "verbose"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ContextWithLogger(context.Background(), zap.New(core))

	ctx = WithFields(ctx, zap.String("request_id", "abc"))
	FromContext(ctx).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "abc" {
		t.Errorf("request_id = %v, want abc", got)
	}
}

func TestWithFields_NoLogger(t *testing.T) {
	ctx := context.Background()
	if WithFields(ctx, zap.String("k", "v")) != ctx {
		t.Error("context without logger should be returned unchanged")
	}
}

func TestWithDefault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fallback := zap.New(core)

	FromContext(WithDefault(context.Background(), fallback)).Info("from default")
	if logs.Len() != 1 {
		t.Fatalf("entries = %d, want 1", logs.Len())
	}

	ownCore, ownLogs := observer.New(zapcore.DebugLevel)
	ctx := ContextWithLogger(context.Background(), zap.New(ownCore))
	FromContext(WithDefault(ctx, fallback)).Info("from caller")
	if ownLogs.Len() != 1 || logs.Len() != 1 {
		t.Errorf("caller logger should win: own=%d fallback=%d", ownLogs.Len(), logs.Len())
	}
}
