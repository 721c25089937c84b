package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_MessageAndFields(t *testing.T) {
	l, logs := newObserved(t)

	l.Info(context.Background(), "session restored", "email", "a@b.c")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "session restored", entries[0].Message)
	assert.Equal(t, "a@b.c", entries[0].ContextMap()["email"])
}

func TestZapLogger_Levels(t *testing.T) {
	l, logs := newObserved(t)
	ctx := context.Background()

	l.Debug(ctx, "d")
	l.Warn(ctx, "w")
	l.Error(ctx, "e")

	require.Equal(t, 3, logs.Len())
}

func TestZapLogger_WithCarriesFields(t *testing.T) {
	l, logs := newObserved(t)

	child := l.With("component", "store")
	child.Info(context.Background(), "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "store", entries[0].ContextMap()["component"])
}

func TestNopLogger_Discards(t *testing.T) {
	l := NewNopLogger()
	require.NotPanics(t, func() {
		l.With("k", "v").Error(context.Background(), "ignored", "k", "v")
	})
}
