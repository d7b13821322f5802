package competitiondb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CompetitionDBImpl implements Repository on bun.
type CompetitionDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*CompetitionDBImpl)(nil)

func (r *CompetitionDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *CompetitionDBImpl) UpsertRoundResult(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string, payload json.RawMessage) error {
	row := &RoundResult{
		ID:        uuid.New(),
		RoundID:   roundID,
		Kind:      kind,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := r.idb(db).NewInsert().
		Model(row).
		On("CONFLICT (round_id, kind) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert %s result for round %s: %w", kind, roundID, err)
	}
	return nil
}

func (r *CompetitionDBImpl) GetRoundResult(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string) (json.RawMessage, error) {
	row := &RoundResult{}
	err := r.idb(db).NewSelect().
		Model(row).
		Where("round_id = ?", roundID).
		Where("kind = ?", kind).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s result for round %s: %w", kind, roundID, err)
	}
	return row.Payload, nil
}

func (r *CompetitionDBImpl) InsertCTPMeasurement(ctx context.Context, db bun.IDB, m *CTPMeasurement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if _, err := r.idb(db).NewInsert().Model(m).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert ctp measurement for round %s: %w", m.RoundID, err)
	}
	return nil
}

func (r *CompetitionDBImpl) GetCTPMeasurements(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]CTPMeasurement, error) {
	var rows []CTPMeasurement
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("round_id = ?", roundID).
		Order("recorded_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ctp measurements for round %s: %w", roundID, err)
	}
	return rows, nil
}
