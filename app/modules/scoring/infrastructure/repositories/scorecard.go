package scoringdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// ScorecardDBImpl implements Repository on bun.
type ScorecardDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ScorecardDBImpl)(nil)

func (r *ScorecardDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *ScorecardDBImpl) ReplaceRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID, playedAt time.Time, cards []scoringdomain.Scorecard) error {
	idb := r.idb(db)

	if _, err := idb.NewDelete().
		Model((*Scorecard)(nil)).
		Where("round_id = ?", roundID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear scorecards for round %s: %w", roundID, err)
	}

	if len(cards) == 0 {
		return nil
	}

	rows := make([]Scorecard, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, Scorecard{
			ID:              uuid.New(),
			RoundID:         roundID,
			MemberID:        card.MemberID,
			DisplayName:     card.DisplayName,
			Format:          string(card.Format),
			PlayingHandicap: card.PlayingHandicap,
			Holes:           card.Holes,
			GrossTotal:      card.GrossTotal,
			NetTotal:        card.NetTotal,
			TotalPoints:     card.TotalPoints,
			PlayedAt:        playedAt,
		})
	}

	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert scorecards for round %s: %w", roundID, err)
	}
	return nil
}

func (r *ScorecardDBImpl) GetRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error) {
	var rows []Scorecard
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("round_id = ?", roundID).
		OrderExpr("net_total ASC NULLS LAST").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scorecards for round %s: %w", roundID, err)
	}

	cards := make([]scoringdomain.Scorecard, 0, len(rows))
	for i := range rows {
		cards = append(cards, rows[i].ToDomain())
	}
	return cards, nil
}

func (r *ScorecardDBImpl) HasRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) (bool, error) {
	exists, err := r.idb(db).NewSelect().
		Model((*Scorecard)(nil)).
		Where("round_id = ?", roundID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check scorecards for round %s: %w", roundID, err)
	}
	return exists, nil
}

func (r *ScorecardDBImpl) GetMemberScorecards(ctx context.Context, db bun.IDB, memberID string, from, to time.Time) ([]scoringdomain.Scorecard, error) {
	var rows []Scorecard
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("member_id = ?", memberID).
		Where("played_at >= ?", from).
		Where("played_at <= ?", to).
		Order("played_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scorecards for member %s: %w", memberID, err)
	}

	cards := make([]scoringdomain.Scorecard, 0, len(rows))
	for i := range rows {
		cards = append(cards, rows[i].ToDomain())
	}
	return cards, nil
}
