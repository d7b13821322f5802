// Package scoringhandlers adapts the scoring service to the message router.
package scoringhandlers

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	scoringservice "github.com/fairway-collective/tripcaddy/app/modules/scoring/application"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// Handlers exposes the scoring module's message handlers keyed by the topic
// they subscribe to.
type Handlers interface {
	HandleRoundFinalized() message.HandlerFunc
}

// ScoringHandlers handles scoring-related events.
type ScoringHandlers struct {
	service scoringservice.Service
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
}

// NewScoringHandlers creates a new ScoringHandlers.
func NewScoringHandlers(
	service scoringservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) Handlers {
	return &ScoringHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}
