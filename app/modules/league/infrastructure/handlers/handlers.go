// Package leaguehandlers adapts the league service to the message router.
package leaguehandlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	leagueservice "github.com/fairway-collective/tripcaddy/app/modules/league/application"
	leagueevents "github.com/fairway-collective/tripcaddy/app/modules/league/events"
	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
	"github.com/fairway-collective/tripcaddy/internal/handlerwrapper"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// Handlers exposes the league module's message handlers.
type Handlers interface {
	HandleScorecardsProcessed() message.HandlerFunc
}

// LeagueHandlers handles league-related events.
type LeagueHandlers struct {
	service leagueservice.Service
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
}

// NewLeagueHandlers creates a new LeagueHandlers.
func NewLeagueHandlers(
	service leagueservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) Handlers {
	return &LeagueHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// HandleScorecardsProcessed files the round into its active seasons and
// publishes one standings update per season the round touched.
func (h *LeagueHandlers) HandleScorecardsProcessed() message.HandlerFunc {
	return handlerwrapper.Wrap(
		"league.scorecards_processed",
		h.logger,
		h.metrics,
		h.tracer,
		func(ctx context.Context, payload *scoringevents.RoundScorecardsProcessedPayloadV1) ([]handlerwrapper.Result, error) {
			if payload == nil {
				return nil, errors.New("payload is nil")
			}

			updated, err := h.service.RecordRoundResults(ctx, *payload)
			if err != nil {
				return nil, err
			}

			results := make([]handlerwrapper.Result, 0, len(updated))
			for i := range updated {
				results = append(results, handlerwrapper.Result{
					Topic:   leagueevents.StandingsUpdatedV1,
					Payload: updated[i],
				})
			}
			return results, nil
		},
	)
}
