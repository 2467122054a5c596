package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedZap(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedZap(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	require.Equal(t, 4, logs.Len())

	entries := logs.All()
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "dbg", entries[0].Message)
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	require.Equal(t, "err", entries[3].Message)
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	log, logs := newObservedZap(t)

	log2 := log.With("user_id", "demo-user")
	log2.Info(context.Background(), "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "demo-user", fields["user_id"])
}
