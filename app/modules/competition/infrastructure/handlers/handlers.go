// Package competitionhandlers adapts the competition service to the message
// router.
package competitionhandlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	competitionservice "github.com/fairway-collective/tripcaddy/app/modules/competition/application"
	competitionevents "github.com/fairway-collective/tripcaddy/app/modules/competition/events"
	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
	"github.com/fairway-collective/tripcaddy/internal/handlerwrapper"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// Handlers exposes the competition module's message handlers.
type Handlers interface {
	HandleScorecardsProcessed() message.HandlerFunc
}

// CompetitionHandlers handles competition-related events.
type CompetitionHandlers struct {
	service competitionservice.Service
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
}

// NewCompetitionHandlers creates a new CompetitionHandlers.
func NewCompetitionHandlers(
	service competitionservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) Handlers {
	return &CompetitionHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// HandleScorecardsProcessed recomputes skins whenever a round's scorecards
// land. The processed payload carries the cards inline, so no read back to
// the scoring tables is needed on this path.
func (h *CompetitionHandlers) HandleScorecardsProcessed() message.HandlerFunc {
	return handlerwrapper.Wrap(
		"competition.scorecards_processed",
		h.logger,
		h.metrics,
		h.tracer,
		func(ctx context.Context, payload *scoringevents.RoundScorecardsProcessedPayloadV1) ([]handlerwrapper.Result, error) {
			if payload == nil {
				return nil, errors.New("payload is nil")
			}

			result, err := h.service.ComputeRoundSkins(ctx, competitionservice.SkinsComputeRequest{
				RoundID:    payload.RoundID,
				Scorecards: payload.Scorecards,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{
					{
						Topic:   competitionevents.SkinsFailedV1,
						Payload: result.Failure,
					},
				}, nil
			}

			if !result.IsSuccess() {
				return nil, errors.New("service returned neither success nor failure")
			}

			return []handlerwrapper.Result{
				{
					Topic:   competitionevents.SkinsComputedV1,
					Payload: result.Success,
				},
			}, nil
		},
	)
}
