// Package attr provides slog attribute helpers shared across modules.
package attr

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Float64(key string, value float64) slog.Attr {
	return slog.Float64(key, value)
}

func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

type correlationIDKey struct{}

// WithCorrelationID stores a correlation ID on the context so service-layer
// logs can be joined with the message that triggered them.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// ExtractCorrelationID returns a correlation_id attribute from the context,
// or an empty one when the call did not originate from the message router.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		return slog.String(middleware.CorrelationIDMetadataKey, id)
	}
	return slog.String(middleware.CorrelationIDMetadataKey, "")
}

// CorrelationIDFromMsg returns a correlation_id attribute read from a
// message's metadata.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String(middleware.CorrelationIDMetadataKey, middleware.MessageCorrelationID(msg))
}
