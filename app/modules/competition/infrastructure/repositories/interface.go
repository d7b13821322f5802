package competitiondb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the persistence contract of the competition module.
type Repository interface {
	// UpsertRoundResult stores a computed result for (round, kind), replacing
	// any previous computation.
	UpsertRoundResult(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string, payload json.RawMessage) error
	// GetRoundResult returns the stored payload for (round, kind), or
	// ErrNotFound.
	GetRoundResult(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string) (json.RawMessage, error)
	// InsertCTPMeasurement records one validated measurement.
	InsertCTPMeasurement(ctx context.Context, db bun.IDB, m *CTPMeasurement) error
	// GetCTPMeasurements returns a round's measurements in recorded order.
	GetCTPMeasurements(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]CTPMeasurement, error)
}
