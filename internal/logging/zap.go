package logging

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger adapts a zap logger to the Logger interface.
type ZapLogger struct {
	l *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

func (z *ZapLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.l.Debugw(msg, args...)
}

func (z *ZapLogger) Info(ctx context.Context, msg string, args ...any) {
	z.l.Infow(msg, args...)
}

func (z *ZapLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.l.Warnw(msg, args...)
}

func (z *ZapLogger) Error(ctx context.Context, msg string, args ...any) {
	z.l.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}
