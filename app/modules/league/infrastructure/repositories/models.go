package leaguedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fairway-collective/tripcaddy/app/modules/league/standings"
)

// Season is a league season with its points-system settings and window.
type Season struct {
	bun.BaseModel `bun:"table:league_seasons,alias:ls"`

	ID        uuid.UUID          `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name      string             `bun:"name,notnull"`
	StartsAt  time.Time          `bun:"starts_at,notnull"`
	EndsAt    time.Time          `bun:"ends_at,notnull"`
	Settings  standings.Settings `bun:"settings,type:jsonb"`
	CreatedAt time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// SeasonRound is one member's result in one season round, as recorded when
// the round's scorecards were processed.
type SeasonRound struct {
	bun.BaseModel `bun:"table:league_season_rounds,alias:lsr"`

	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	SeasonID         uuid.UUID `bun:"season_id,notnull,type:uuid"`
	RoundID          uuid.UUID `bun:"round_id,notnull,type:uuid"`
	MemberID         string    `bun:"member_id,notnull"`
	Name             string    `bun:"name,notnull"`
	Position         *int      `bun:"position"`
	NetTotal         *int      `bun:"net_total"`
	StablefordPoints *int      `bun:"stableford_points"`
	PlayedAt         time.Time `bun:"played_at,nullzero"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ToResult converts the row into the aggregator's round result.
func (r *SeasonRound) ToResult() standings.RoundResult {
	return standings.RoundResult{
		Position:         r.Position,
		NetTotal:         r.NetTotal,
		StablefordPoints: r.StablefordPoints,
	}
}

// SeasonStanding is one member's computed season row. The whole season is
// replaced atomically on recompute.
type SeasonStanding struct {
	bun.BaseModel `bun:"table:league_standings,alias:lst"`

	ID           uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	SeasonID     uuid.UUID       `bun:"season_id,notnull,type:uuid"`
	MemberID     string          `bun:"member_id,notnull"`
	Name         string          `bun:"name,notnull"`
	Position     int             `bun:"position,notnull"`
	TotalPoints  int             `bun:"total_points,notnull"`
	RoundsPlayed int             `bun:"rounds_played,notnull"`
	Eligible     bool            `bun:"eligible,notnull"`
	Stats        standings.Stats `bun:"stats,type:jsonb"`
	ComputedAt   time.Time       `bun:"computed_at,nullzero,notnull,default:current_timestamp"`
}

// ToStanding converts the row into the domain standing.
func (s *SeasonStanding) ToStanding() standings.Standing {
	return standings.Standing{
		MemberID:     s.MemberID,
		Name:         s.Name,
		Position:     s.Position,
		TotalPoints:  s.TotalPoints,
		RoundsPlayed: s.RoundsPlayed,
		Eligible:     s.Eligible,
		Stats:        s.Stats,
	}
}
