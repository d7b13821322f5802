package competitiondb

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Result kinds stored in competition_results.
const (
	KindSkins   = "skins"
	KindFlights = "flights"
	KindCTP     = "ctp"
)

// RoundResult is one computed competition outcome for a round, stored as the
// payload the module computed it into. One row per (round, kind).
type RoundResult struct {
	bun.BaseModel `bun:"table:competition_results,alias:cr"`

	ID        uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	RoundID   uuid.UUID       `bun:"round_id,notnull,type:uuid"`
	Kind      string          `bun:"kind,notnull"`
	Payload   json.RawMessage `bun:"payload,type:jsonb"`
	CreatedAt time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CTPMeasurement is one recorded closest-to-pin distance. Distances are
// normalized to inches on write.
type CTPMeasurement struct {
	bun.BaseModel `bun:"table:ctp_measurements,alias:cm"`

	ID             uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	RoundID        uuid.UUID `bun:"round_id,notnull,type:uuid"`
	MemberID       string    `bun:"member_id,notnull"`
	Name           string    `bun:"name,notnull"`
	HoleNumber     int       `bun:"hole_number,notnull"`
	DistanceInches float64   `bun:"distance_inches,notnull"`
	OnGreen        bool      `bun:"on_green,notnull"`
	RecordedAt     time.Time `bun:"recorded_at,nullzero,notnull,default:current_timestamp"`
}
