package scoringdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// Scorecard is the persisted per-player round result.
type Scorecard struct {
	bun.BaseModel `bun:"table:scorecards,alias:sc"`

	ID              uuid.UUID                       `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	RoundID         uuid.UUID                       `bun:"round_id,notnull,type:uuid"`
	MemberID        string                          `bun:"member_id,notnull"`
	DisplayName     string                          `bun:"display_name,notnull"`
	Format          string                          `bun:"format,notnull"`
	PlayingHandicap int                             `bun:"playing_handicap,notnull"`
	Holes           []scoringdomain.HoleScoreResult `bun:"holes,type:jsonb"`
	GrossTotal      *int                            `bun:"gross_total"`
	NetTotal        *int                            `bun:"net_total"`
	TotalPoints     *int                            `bun:"total_points"`
	PlayedAt        time.Time                       `bun:"played_at,nullzero"`
	CreatedAt       time.Time                       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time                       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the row into the engine's scorecard value.
func (s *Scorecard) ToDomain() scoringdomain.Scorecard {
	return scoringdomain.Scorecard{
		MemberID:        s.MemberID,
		DisplayName:     s.DisplayName,
		Format:          scoringdomain.Format(s.Format),
		PlayingHandicap: s.PlayingHandicap,
		Holes:           s.Holes,
		GrossTotal:      s.GrossTotal,
		NetTotal:        s.NetTotal,
		TotalPoints:     s.TotalPoints,
	}
}
