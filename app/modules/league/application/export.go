package leagueservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportStandingsXLSX builds a season workbook: one Standings sheet ordered
// by position, unranked players at the bottom.
func (s *LeagueService) ExportStandingsXLSX(ctx context.Context, seasonID uuid.UUID) ([]byte, error) {
	season, err := s.repo.GetSeason(ctx, nil, seasonID)
	if err != nil {
		return nil, err
	}
	table, err := s.GetSeasonStandings(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Standings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Position", "Player", "Points", "Rounds", "Avg Points", "Avg Score", "Best Round", "Worst Round", "Eligible"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, st := range table {
		row := rowIdx + 2

		position := any("-")
		if st.Eligible {
			position = st.Position
		}

		values := []any{
			position,
			st.Name,
			st.TotalPoints,
			st.RoundsPlayed,
			st.Stats.AvgPoints,
			optFloat(st.Stats.AvgScore),
			optInt(st.Stats.BestRound),
			optInt(st.Stats.WorstRound),
			st.Eligible,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write standings row %d: %w", row, err)
			}
		}
	}

	if err := f.SetCellValue(sheet, "K1", season.Name); err != nil {
		return nil, fmt.Errorf("failed to write season name: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func optFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func optInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
