package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (l *logger) Context(ctx context.Context) context.Context {
	if _, ok := fromContext(ctx); ok {
		return ctx
	}
	return newLogContext().store(ctx)
}

// WithRequestID attaches a request id to the log context, keeping an
// existing log id and operation when there are ones.
func (l *logger) WithRequestID(ctx context.Context, requestID string) context.Context {
	lgCtx, ok := fromContext(ctx)
	if !ok {
		lgCtx = newLogContext()
	}

	next := *lgCtx
	next.RequestID = requestID
	return next.store(ctx)
}

// ContextWithCapture starts timing operationName. The returned Capture logs
// the operation with its duration.
func (l *logger) ContextWithCapture(ctx context.Context, operationName string) (context.Context, Capture) {
	lgCtx, ok := fromContext(ctx)
	if !ok {
		lgCtx = newLogContext()
	}

	next := *lgCtx
	next.OperationName = operationName
	next.StartTime = time.Now()

	return next.store(ctx), l.captureContext(&next)
}

func (l *logger) captureContext(lgCtx *logContext) Capture {
	return func(attrs ...zap.Field) {
		attrs = append(attrs, lgCtx.ToFields()...)
		l.lg.Info(lgCtx.OperationName,
			append(attrs, zap.Duration(durationKey, time.Since(lgCtx.StartTime)))...,
		)
	}
}

func (l *logger) Debug(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Debug(log, withAttrs(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Info(log, withAttrs(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Warn(log, withAttrs(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Error(log, withAttrs(ctx, fields)...)
}

func withAttrs(ctx context.Context, fields []zapcore.Field) []zapcore.Field {
	return append(fields, getAttrs(ctx)...)
}
