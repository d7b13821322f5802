package competitionservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	competitionevents "github.com/fairway-collective/tripcaddy/app/modules/competition/events"
	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/skins"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
	"github.com/fairway-collective/tripcaddy/internal/results"
)

// SkinsOperationResult is the envelope for the skins computation operation.
type SkinsOperationResult = results.OperationResult[
	competitionevents.SkinsComputedPayloadV1,
	competitionevents.SkinsFailedPayloadV1,
]

// SkinsComputeRequest asks for a round's skins to be (re)computed. Scorecards
// may be supplied inline (event-driven path) or left empty to load the
// round's persisted cards. A zero Config selects the default game.
type SkinsComputeRequest struct {
	RoundID    uuid.UUID
	Scorecards []scoringdomain.Scorecard
	Config     skins.Config
}

// skinsInput flattens scorecards into the hole scores and name lookup the
// skins calculator wants. Unrecorded holes simply produce no score.
func skinsInput(cards []scoringdomain.Scorecard) ([]skins.HoleScore, map[string]string) {
	var scores []skins.HoleScore
	names := make(map[string]string, len(cards))

	for _, card := range cards {
		names[card.MemberID] = card.DisplayName
		for _, hole := range card.Holes {
			scores = append(scores, skins.HoleScore{
				MemberID:   card.MemberID,
				HoleNumber: hole.HoleNumber,
				NetStrokes: hole.NetStrokes,
			})
		}
	}
	return scores, names
}

// ComputeRoundSkins runs the skins game over a round's scorecards and stores
// the outcome, replacing any previous computation for the round.
func (s *CompetitionService) ComputeRoundSkins(ctx context.Context, payload SkinsComputeRequest) (SkinsOperationResult, error) {
	return withTelemetry(s, ctx, "ComputeRoundSkins", payload.RoundID, func(ctx context.Context) (SkinsOperationResult, error) {
		failure := func(reason string) SkinsOperationResult {
			return results.Failure[competitionevents.SkinsComputedPayloadV1](
				competitionevents.SkinsFailedPayloadV1{
					RoundID: payload.RoundID,
					Reason:  reason,
				})
		}

		cards := payload.Scorecards
		if len(cards) == 0 {
			loaded, err := s.scorecards.GetRoundScorecards(ctx, nil, payload.RoundID)
			if err != nil {
				s.logger.ErrorContext(ctx, "Failed to load scorecards for skins",
					attr.ExtractCorrelationID(ctx),
					attr.String("round_id", payload.RoundID.String()),
					attr.Error(err),
				)
				return failure("failed to load scorecards"), nil
			}
			cards = loaded
		}
		if len(cards) == 0 {
			return failure("round has no scorecards"), nil
		}

		cfg := payload.Config
		if len(cfg.EligibleHoles) == 0 {
			cfg = skins.DefaultConfig()
		}

		scores, names := skinsInput(cards)
		holeResults, totals := skins.Calculate(scores, names, cfg)

		computed := competitionevents.SkinsComputedPayloadV1{
			RoundID:     payload.RoundID,
			HoleResults: holeResults,
			Leaderboard: skins.Leaderboard(totals, names),
		}

		stored, err := json.Marshal(computed)
		if err != nil {
			return SkinsOperationResult{}, fmt.Errorf("failed to marshal skins result: %w", err)
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (SkinsOperationResult, error) {
			if err := s.repo.UpsertRoundResult(ctx, db, payload.RoundID, competitiondb.KindSkins, stored); err != nil {
				return SkinsOperationResult{}, err
			}
			return results.Success[competitionevents.SkinsComputedPayloadV1, competitionevents.SkinsFailedPayloadV1](computed), nil
		})
	})
}

// GetRoundSkins returns a round's stored skins outcome.
func (s *CompetitionService) GetRoundSkins(ctx context.Context, roundID uuid.UUID) (*competitionevents.SkinsComputedPayloadV1, error) {
	stored, err := s.repo.GetRoundResult(ctx, nil, roundID, competitiondb.KindSkins)
	if err != nil {
		return nil, err
	}

	var computed competitionevents.SkinsComputedPayloadV1
	if err := json.Unmarshal(stored, &computed); err != nil {
		return nil, fmt.Errorf("failed to decode stored skins result: %w", err)
	}
	return &computed, nil
}
