package scoringhandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
	"github.com/fairway-collective/tripcaddy/internal/handlerwrapper"
)

// HandleRoundFinalized computes and persists scorecards for a finalized
// round, then announces the outcome. Handled business failures publish a
// failed event instead of erroring, so the message is never retried for
// conditions a retry cannot fix.
func (h *ScoringHandlers) HandleRoundFinalized() message.HandlerFunc {
	return handlerwrapper.Wrap(
		"scoring.round_finalized",
		h.logger,
		h.metrics,
		h.tracer,
		func(ctx context.Context, payload *scoringevents.RoundFinalizedPayloadV1) ([]handlerwrapper.Result, error) {
			if payload == nil {
				return nil, errors.New("payload is nil")
			}

			result, err := h.service.ProcessRoundScorecards(ctx, *payload)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{
					{
						Topic:   scoringevents.RoundScorecardsFailedV1,
						Payload: result.Failure,
					},
				}, nil
			}

			if !result.IsSuccess() {
				return nil, errors.New("service returned neither success nor failure")
			}

			return []handlerwrapper.Result{
				{
					Topic:   scoringevents.RoundScorecardsProcessedV1,
					Payload: result.Success,
				},
			}, nil
		},
	)
}
