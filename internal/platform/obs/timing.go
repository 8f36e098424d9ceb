package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id carried by the context, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time measures an operation. Call it with defer and pass the named error
// so the closure records outcome as well as duration:
//
//	defer obs.Time(ctx, "services.FindNearby")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}

		if errp != nil && *errp != nil {
			zap.L().Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		zap.L().Debug("operation completed", fields...)
	}
}
