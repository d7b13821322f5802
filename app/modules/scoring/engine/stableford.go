package engine

import (
	"fmt"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/domain/handicap"
)

// Stableford awards points per hole based on net score relative to par;
// higher totals win. Modified Stableford is the same engine composed with a
// different default table rather than a subtype.
type Stableford struct {
	format scoringdomain.Format
	table  scoringdomain.PointsTable
}

func NewStableford(cfg scoringdomain.ScoringConfig) *Stableford {
	table := scoringdomain.DefaultStablefordTable()
	if cfg.StablefordPoints != nil {
		table = *cfg.StablefordPoints
	}
	return &Stableford{format: scoringdomain.FormatStableford, table: table}
}

func NewModifiedStableford(cfg scoringdomain.ScoringConfig) *Stableford {
	table := scoringdomain.ModifiedStablefordTable()
	if cfg.StablefordPoints != nil {
		table = *cfg.StablefordPoints
	}
	return &Stableford{format: scoringdomain.FormatModifiedStableford, table: table}
}

func (e *Stableford) Format() scoringdomain.Format {
	return e.format
}

// points maps a net-to-par difference onto the configured table.
func (e *Stableford) points(netStrokes, par int) int {
	diff := par - netStrokes
	switch {
	case diff >= 3:
		return e.table.Albatross
	case diff == 2:
		return e.table.Eagle
	case diff == 1:
		return e.table.Birdie
	case diff == 0:
		return e.table.Par
	case diff == -1:
		return e.table.Bogey
	case diff == -2:
		return e.table.DoubleBogey
	default:
		return e.table.Worse
	}
}

func (e *Stableford) CalculateHoleScore(input scoringdomain.HoleScoreInput) scoringdomain.HoleScoreResult {
	netStrokes := handicap.NetScore(input.Strokes, input.HandicapStrokes)
	return scoringdomain.HoleScoreResult{
		HoleNumber: input.HoleNumber,
		Strokes:    input.Strokes,
		NetStrokes: netStrokes,
		Points:     scoringdomain.IntPtr(e.points(netStrokes, input.Par)),
	}
}

func (e *Stableford) CalculateTotalScore(holes []scoringdomain.HoleScoreResult) scoringdomain.TotalScoreResult {
	gross, net := sumGrossNet(holes)
	totalPoints := 0
	for _, h := range holes {
		if h.Points != nil {
			totalPoints += *h.Points
		}
	}
	return scoringdomain.TotalScoreResult{
		GrossTotal:  gross,
		NetTotal:    net,
		TotalPoints: scoringdomain.IntPtr(totalPoints),
	}
}

func (e *Stableford) CompareScores(a, b scoringdomain.TotalScoreResult) int {
	// Higher points is better
	return totalPoints(b) - totalPoints(a)
}

func (e *Stableford) LeaderboardDisplay(score scoringdomain.TotalScoreResult) string {
	return fmt.Sprintf("%d pts", totalPoints(score))
}

func (e *Stableford) Description() string {
	if e.format == scoringdomain.FormatModifiedStableford {
		return "Modified Stableford - custom points system. Typically: Eagle=5, Birdie=2, Par=0, Bogey=-1, Double=-3."
	}
	return "Stableford scoring - earn points based on score relative to par. Higher points win. Standard: Eagle=4, Birdie=3, Par=2, Bogey=1."
}

func totalPoints(score scoringdomain.TotalScoreResult) int {
	if score.TotalPoints == nil {
		return 0
	}
	return *score.TotalPoints
}
