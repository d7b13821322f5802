// Package handlerwrapper provides the common telemetry and codec shell shared
// by all watermill message handlers: unmarshal, trace, count, and convert the
// handler's results back into publishable messages.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-collective/tripcaddy/internal/observability"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

// TopicMetadataKey carries the resolved publish topic on outgoing messages.
const TopicMetadataKey = "topic"

// Result is one message a handler wants published.
type Result struct {
	Topic   string
	Payload any
}

// HandlerFunc is the typed handler signature the wrapper adapts to watermill.
type HandlerFunc[P any] func(ctx context.Context, payload *P) ([]Result, error)

// Wrap adapts a typed handler into a watermill HandlerFunc, adding tracing,
// metrics, payload unmarshalling, and correlation ID propagation.
func Wrap[P any](
	handlerName string,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	fn HandlerFunc[P],
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_id", msg.UUID),
		))
		defer span.End()

		ctx = attr.WithCorrelationID(ctx, middleware.MessageCorrelationID(msg))

		metrics.RecordOperationAttempt(ctx, handlerName)

		startTime := time.Now()
		defer func() {
			metrics.RecordOperationDuration(ctx, handlerName, time.Since(startTime))
		}()

		logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		var payload P
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			logger.ErrorContext(ctx, "Failed to unmarshal payload",
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			metrics.RecordOperationFailure(ctx, handlerName)
			span.RecordError(err)
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		results, err := fn(ctx, &payload)
		if err != nil {
			logger.ErrorContext(ctx, "Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			metrics.RecordOperationFailure(ctx, handlerName)
			span.RecordError(err)
			return nil, err
		}

		messages := make([]*message.Message, 0, len(results))
		for _, result := range results {
			out, err := ToMessage(result)
			if err != nil {
				metrics.RecordOperationFailure(ctx, handlerName)
				span.RecordError(err)
				return nil, fmt.Errorf("failed to build message for %s: %w", result.Topic, err)
			}
			middleware.SetCorrelationID(middleware.MessageCorrelationID(msg), out)
			messages = append(messages, out)
		}

		logger.InfoContext(ctx, handlerName+" completed successfully",
			attr.CorrelationIDFromMsg(msg),
		)
		metrics.RecordOperationSuccess(ctx, handlerName)
		return messages, nil
	}
}

// ToMessage marshals a Result into a watermill message with its publish topic
// recorded in metadata.
func ToMessage(result Result) (*message.Message, error) {
	data, err := json.Marshal(result.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(TopicMetadataKey, result.Topic)
	return msg, nil
}
