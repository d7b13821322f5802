package leagueservice

import (
	"context"
	"fmt"
	"sort"

	leagueevents "github.com/fairway-collective/tripcaddy/app/modules/league/events"
	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

// RecordRoundResults files a processed round into every season whose window
// contains the round's date, then recomputes those seasons' standings. A
// round landing in no active season is a no-op, not an error.
func (s *LeagueService) RecordRoundResults(ctx context.Context, payload scoringevents.RoundScorecardsProcessedPayloadV1) ([]leagueevents.StandingsUpdatedPayloadV1, error) {
	seasons, err := s.repo.GetActiveSeasons(ctx, nil, payload.PlayedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find active seasons: %w", err)
	}
	if len(seasons) == 0 {
		s.logger.InfoContext(ctx, "Round falls in no active season",
			attr.ExtractCorrelationID(ctx),
			attr.String("round_id", payload.RoundID.String()),
		)
		return nil, nil
	}

	rows := roundRows(payload)

	var updated []leagueevents.StandingsUpdatedPayloadV1
	for _, season := range seasons {
		if err := s.repo.ReplaceRoundResults(ctx, nil, season.ID, payload.RoundID, rows); err != nil {
			return updated, err
		}

		result, err := s.RecomputeStandings(ctx, season.ID)
		if err != nil {
			return updated, err
		}
		if result.IsSuccess() {
			updated = append(updated, *result.Success)
		}
	}

	return updated, nil
}

// roundRows converts a round's scorecards into season round rows, ranking
// complete cards by the format's ordering. Incomplete cards are recorded
// without a position so the round still counts as played.
func roundRows(payload scoringevents.RoundScorecardsProcessedPayloadV1) []leaguedb.SeasonRound {
	stableford := payload.Format == scoringdomain.FormatStableford ||
		payload.Format == scoringdomain.FormatModifiedStableford

	complete := make([]scoringdomain.Scorecard, 0, len(payload.Scorecards))
	var incomplete []scoringdomain.Scorecard
	for _, card := range payload.Scorecards {
		if card.Complete() {
			complete = append(complete, card)
		} else {
			incomplete = append(incomplete, card)
		}
	}

	sort.SliceStable(complete, func(i, j int) bool {
		if stableford {
			return derefInt(complete[i].TotalPoints) > derefInt(complete[j].TotalPoints)
		}
		return derefInt(complete[i].NetTotal) < derefInt(complete[j].NetTotal)
	})

	rows := make([]leaguedb.SeasonRound, 0, len(payload.Scorecards))

	position := 1
	for i, card := range complete {
		if i > 0 {
			prev := complete[i-1]
			var tied bool
			if stableford {
				tied = derefInt(card.TotalPoints) == derefInt(prev.TotalPoints)
			} else {
				tied = derefInt(card.NetTotal) == derefInt(prev.NetTotal)
			}
			if !tied {
				position = i + 1
			}
		}
		pos := position
		rows = append(rows, leaguedb.SeasonRound{
			MemberID:         card.MemberID,
			Name:             card.DisplayName,
			Position:         &pos,
			NetTotal:         card.NetTotal,
			StablefordPoints: card.TotalPoints,
			PlayedAt:         payload.PlayedAt,
		})
	}

	for _, card := range incomplete {
		rows = append(rows, leaguedb.SeasonRound{
			MemberID:         card.MemberID,
			Name:             card.DisplayName,
			NetTotal:         card.NetTotal,
			StablefordPoints: card.TotalPoints,
			PlayedAt:         payload.PlayedAt,
		})
	}

	return rows
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
