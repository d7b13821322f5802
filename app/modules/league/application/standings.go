package leagueservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	leagueevents "github.com/fairway-collective/tripcaddy/app/modules/league/events"
	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/league/standings"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
	"github.com/fairway-collective/tripcaddy/internal/results"
)

// StandingsOperationResult is the envelope for the standings recompute
// operation.
type StandingsOperationResult = results.OperationResult[
	leagueevents.StandingsUpdatedPayloadV1,
	leagueevents.StandingsFailedPayloadV1,
]

// RecomputeStandings rebuilds a season's full table from its recorded rounds
// and replaces the stored standings atomically. The operation is idempotent:
// recomputing an unchanged season yields the identical table.
func (s *LeagueService) RecomputeStandings(ctx context.Context, seasonID uuid.UUID) (StandingsOperationResult, error) {
	return withTelemetry(s, ctx, "RecomputeStandings", seasonID, func(ctx context.Context) (StandingsOperationResult, error) {
		failure := func(reason string) StandingsOperationResult {
			return results.Failure[leagueevents.StandingsUpdatedPayloadV1](
				leagueevents.StandingsFailedPayloadV1{
					SeasonID: seasonID,
					Reason:   reason,
				})
		}

		season, err := s.repo.GetSeason(ctx, nil, seasonID)
		if err != nil {
			if errors.Is(err, leaguedb.ErrSeasonNotFound) {
				return failure("SEASON_NOT_FOUND"), nil
			}
			return StandingsOperationResult{}, err
		}

		rounds, err := s.repo.GetSeasonRounds(ctx, nil, seasonID)
		if err != nil {
			return StandingsOperationResult{}, err
		}

		ranked := rankSeason(rounds, season.Settings)

		rows := make([]leaguedb.SeasonStanding, 0, len(ranked))
		for _, st := range ranked {
			rows = append(rows, leaguedb.SeasonStanding{
				MemberID:     st.MemberID,
				Name:         st.Name,
				Position:     st.Position,
				TotalPoints:  st.TotalPoints,
				RoundsPlayed: st.RoundsPlayed,
				Eligible:     st.Eligible,
				Stats:        st.Stats,
			})
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (StandingsOperationResult, error) {
			if err := s.repo.ReplaceStandings(ctx, db, seasonID, rows); err != nil {
				return StandingsOperationResult{}, err
			}

			s.logger.InfoContext(ctx, "Season standings recomputed",
				attr.ExtractCorrelationID(ctx),
				attr.String("season_id", seasonID.String()),
				attr.Int("players", len(ranked)),
				attr.Int("rounds", len(rounds)),
			)

			return results.Success[leagueevents.StandingsUpdatedPayloadV1, leagueevents.StandingsFailedPayloadV1](
				leagueevents.StandingsUpdatedPayloadV1{
					SeasonID:  seasonID,
					Standings: ranked,
				}), nil
		})
	})
}

// rankSeason groups recorded rounds by member and ranks the season.
func rankSeason(rounds []leaguedb.SeasonRound, settings standings.Settings) []standings.Standing {
	byMember := make(map[string][]standings.RoundResult)
	names := make(map[string]string)
	var order []string

	for i := range rounds {
		r := &rounds[i]
		if _, ok := byMember[r.MemberID]; !ok {
			order = append(order, r.MemberID)
		}
		byMember[r.MemberID] = append(byMember[r.MemberID], r.ToResult())
		names[r.MemberID] = r.Name
	}

	entries := make([]standings.SeasonEntry, 0, len(order))
	for _, memberID := range order {
		summary := standings.SeasonPoints(byMember[memberID], settings)
		entries = append(entries, standings.SeasonEntry{
			MemberID:     memberID,
			Name:         names[memberID],
			TotalPoints:  summary.TotalPoints,
			RoundsPlayed: summary.RoundsPlayed,
			Stats:        summary.Stats,
		})
	}

	return standings.Rank(entries, settings)
}

// GetSeasonStandings returns a season's stored table.
func (s *LeagueService) GetSeasonStandings(ctx context.Context, seasonID uuid.UUID) ([]standings.Standing, error) {
	rows, err := s.repo.GetStandings(ctx, nil, seasonID)
	if err != nil {
		return nil, err
	}

	table := make([]standings.Standing, 0, len(rows))
	for i := range rows {
		table = append(table, rows[i].ToStanding())
	}
	return table, nil
}
