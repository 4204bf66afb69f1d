package logger

import (
	"context"
	"time"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

const (
	logIDKey     = "logID"
	durationKey  = "duration"
	requestKey   = "request"
	operationKey = "operation"
)

type logCtxKey struct{}

// logContext is what every log line written under a context carries. It is
// immutable; each enrichment stores a modified copy.
type logContext struct {
	LogID         ksuid.KSUID
	RequestID     string
	OperationName string
	StartTime     time.Time
}

func newLogContext() *logContext {
	return &logContext{
		LogID:     ksuid.New(),
		StartTime: time.Now(),
	}
}

func fromContext(ctx context.Context) (*logContext, bool) {
	if ctx == nil {
		return nil, false
	}
	lgCtx, ok := ctx.Value(logCtxKey{}).(*logContext)
	return lgCtx, ok
}

func (lgCtx *logContext) store(ctx context.Context) context.Context {
	return context.WithValue(ctx, logCtxKey{}, lgCtx)
}

func (lgCtx *logContext) ToFields() []zap.Field {
	if lgCtx == nil {
		return nil
	}

	attrs := make([]zap.Field, 0, 3)
	attrs = append(attrs, zap.String(logIDKey, lgCtx.LogID.String()))

	if lgCtx.RequestID != "" {
		attrs = append(attrs, zap.String(requestKey, lgCtx.RequestID))
	}
	if lgCtx.OperationName != "" {
		attrs = append(attrs, zap.String(operationKey, lgCtx.OperationName))
	}
	return attrs
}

func getAttrs(ctx context.Context) []zap.Field {
	lgCtx, _ := fromContext(ctx)
	return lgCtx.ToFields()
}
