package competitionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fairway-collective/tripcaddy/app/modules/competition/ctp"
	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
)

// CTPStandings is a round's closest-to-pin state: per-hole results plus the
// overall champion, if any hole has produced a winner.
type CTPStandings struct {
	Results  []ctp.Result  `json:"results"`
	Champion *ctp.Champion `json:"champion,omitempty"`
}

// RecordCTPMeasurement validates and stores one measurement. Distances are
// normalized to inches so measurements in mixed units compare correctly.
func (s *CompetitionService) RecordCTPMeasurement(ctx context.Context, roundID uuid.UUID, m ctp.Measurement, cfg ctp.Config) error {
	if err := ctp.Validate(m, cfg); err != nil {
		return fmt.Errorf("measurement rejected: %w", err)
	}

	recordedAt := m.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	row := &competitiondb.CTPMeasurement{
		RoundID:        roundID,
		MemberID:       m.MemberID,
		Name:           m.Name,
		HoleNumber:     m.HoleNumber,
		DistanceInches: ctp.ToInches(m.Distance, m.Unit),
		OnGreen:        m.OnGreen,
		RecordedAt:     recordedAt,
	}
	return s.repo.InsertCTPMeasurement(ctx, nil, row)
}

// GetRoundCTP computes the round's closest-to-pin standings from its stored
// measurements, reported in the configured unit.
func (s *CompetitionService) GetRoundCTP(ctx context.Context, roundID uuid.UUID, cfg ctp.Config) (*CTPStandings, error) {
	rows, err := s.repo.GetCTPMeasurements(ctx, nil, roundID)
	if err != nil {
		return nil, err
	}

	measurements := make([]ctp.Measurement, 0, len(rows))
	for _, row := range rows {
		measurements = append(measurements, ctp.Measurement{
			MemberID:   row.MemberID,
			Name:       row.Name,
			HoleNumber: row.HoleNumber,
			Distance:   ctp.FromInches(row.DistanceInches, cfg.Unit),
			Unit:       cfg.Unit,
			OnGreen:    row.OnGreen,
			RecordedAt: row.RecordedAt,
		})
	}

	results := ctp.Calculate(measurements, cfg)
	return &CTPStandings{
		Results:  results,
		Champion: ctp.OverallChampion(results),
	}, nil
}
