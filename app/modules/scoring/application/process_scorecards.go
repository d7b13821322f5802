package scoringservice

import (
	"context"

	"github.com/uptrace/bun"

	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
	"github.com/fairway-collective/tripcaddy/internal/results"
)

// ScorecardOperationResult is the envelope for the scorecard processing
// operation.
type ScorecardOperationResult = results.OperationResult[
	scoringevents.RoundScorecardsProcessedPayloadV1,
	scoringevents.RoundScorecardsFailedPayloadV1,
]

// ProcessRoundScorecards computes and persists every player's card for a
// finalized round. Existing cards block the round unless Overwrite is set;
// the replace itself always runs in one transaction so readers never see a
// half-written round.
func (s *ScoringService) ProcessRoundScorecards(ctx context.Context, payload scoringevents.RoundFinalizedPayloadV1) (ScorecardOperationResult, error) {
	return withTelemetry(s, ctx, "ProcessRoundScorecards", payload.RoundID, func(ctx context.Context) (ScorecardOperationResult, error) {
		failure := func(reason string) ScorecardOperationResult {
			return results.Failure[scoringevents.RoundScorecardsProcessedPayloadV1](
				scoringevents.RoundScorecardsFailedPayloadV1{
					RoundID: payload.RoundID,
					Reason:  reason,
				})
		}

		exists, err := s.repo.HasRoundScorecards(ctx, nil, payload.RoundID)
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to check existing scorecards",
				attr.ExtractCorrelationID(ctx),
				attr.String("round_id", payload.RoundID.String()),
				attr.Error(err),
			)
			return failure("failed to check existing scorecards"), nil
		}
		if exists && !payload.Overwrite {
			s.logger.WarnContext(ctx, "Scorecards already exist for round, overwrite not requested",
				attr.ExtractCorrelationID(ctx),
				attr.String("round_id", payload.RoundID.String()),
			)
			return failure("SCORECARDS_ALREADY_EXIST"), nil
		}

		cards, err := buildRoundScorecards(payload.Setup, payload.Players, s.logger)
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to build scorecards",
				attr.ExtractCorrelationID(ctx),
				attr.String("round_id", payload.RoundID.String()),
				attr.Error(err),
			)
			return failure(err.Error()), nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (ScorecardOperationResult, error) {
			if err := s.repo.ReplaceRoundScorecards(ctx, db, payload.RoundID, payload.PlayedAt, cards); err != nil {
				return ScorecardOperationResult{}, err
			}

			return results.Success[scoringevents.RoundScorecardsProcessedPayloadV1, scoringevents.RoundScorecardsFailedPayloadV1](
				scoringevents.RoundScorecardsProcessedPayloadV1{
					RoundID:    payload.RoundID,
					Format:     payload.Setup.Format,
					PlayedAt:   payload.PlayedAt,
					Scorecards: cards,
				}), nil
		})
	})
}
