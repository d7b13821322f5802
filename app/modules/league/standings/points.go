// Package standings rolls per-round results up into league season points and
// rankings.
package standings

import "sort"

// PointsSystem selects how a round converts into league points.
type PointsSystem string

const (
	// PointsPositionBased awards points from a finishing-position table.
	PointsPositionBased PointsSystem = "POSITION_BASED"
	// PointsStableford uses the round's stored Stableford points directly.
	PointsStableford PointsSystem = "STABLEFORD"
	// PointsStrokeDiff awards base points plus strokes under par.
	PointsStrokeDiff PointsSystem = "STROKE_DIFF"
)

// DefaultPositionPoints awards the top ten finishers 10 down to 1; everyone
// else scores zero.
func DefaultPositionPoints() []int {
	return []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
}

const (
	defaultStrokeDiffBase = 50
	// defaultStrokeDiffPar keeps the historical fixed-par behavior; override
	// per league via Settings.StrokeDiffPar when courses differ.
	defaultStrokeDiffPar = 72
)

// Settings configures a league season's points system.
type Settings struct {
	PointsSystem PointsSystem `json:"pointsSystem"`
	// PositionPoints overrides the default position table.
	PositionPoints []int `json:"positionPoints,omitempty"`
	// MinRounds is the minimum rounds played to appear in the ranking.
	MinRounds int `json:"minRounds,omitempty"`
	// CountBestRounds sums only a player's best N rounds when set.
	CountBestRounds int `json:"countBestRounds,omitempty"`
	// StrokeDiffBase is the base points for the STROKE_DIFF system.
	StrokeDiffBase int `json:"strokeDiffBase,omitempty"`
	// StrokeDiffPar is the par used by STROKE_DIFF; defaults to 72.
	StrokeDiffPar int `json:"strokeDiffPar,omitempty"`
}

func (s Settings) positionPoints() []int {
	if len(s.PositionPoints) > 0 {
		return s.PositionPoints
	}
	return DefaultPositionPoints()
}

func (s Settings) strokeDiffBase() int {
	if s.StrokeDiffBase != 0 {
		return s.StrokeDiffBase
	}
	return defaultStrokeDiffBase
}

func (s Settings) strokeDiffPar() int {
	if s.StrokeDiffPar != 0 {
		return s.StrokeDiffPar
	}
	return defaultStrokeDiffPar
}

// RoundResult is the slice of a scorecard the aggregator needs. Nil fields
// mean the value was not recorded for that round.
type RoundResult struct {
	Position         *int `json:"position,omitempty"`
	NetTotal         *int `json:"netTotal,omitempty"`
	StablefordPoints *int `json:"stablefordPoints,omitempty"`
}

// RoundPoints converts one round into league points under the settings.
// Rounds missing the data their system needs score zero.
func RoundPoints(round RoundResult, settings Settings) int {
	switch settings.PointsSystem {
	case PointsPositionBased:
		if round.Position == nil {
			return 0
		}
		table := settings.positionPoints()
		idx := *round.Position - 1
		if idx < 0 || idx >= len(table) {
			return 0
		}
		return table[idx]

	case PointsStableford:
		if round.StablefordPoints == nil {
			return 0
		}
		return *round.StablefordPoints

	case PointsStrokeDiff:
		if round.NetTotal == nil {
			return 0
		}
		points := settings.strokeDiffBase() + (settings.strokeDiffPar() - *round.NetTotal)
		if points < 0 {
			return 0
		}
		return points

	default:
		return 0
	}
}

// Stats summarizes a player's season scoring.
type Stats struct {
	AvgScore   *float64 `json:"avgScore,omitempty"`
	BestRound  *int     `json:"bestRound,omitempty"`
	WorstRound *int     `json:"worstRound,omitempty"`
	AvgPoints  float64  `json:"avgPoints"`
}

// SeasonSummary is one player's aggregated season.
type SeasonSummary struct {
	TotalPoints   int   `json:"totalPoints"`
	RoundsPlayed  int   `json:"roundsPlayed"`
	CountedRounds int   `json:"countedRounds"`
	Stats         Stats `json:"stats"`
}

// SeasonPoints totals a player's rounds. When CountBestRounds is set and
// lower than rounds played, only the best N round-point values count toward
// the total; stats still cover every round played.
func SeasonPoints(rounds []RoundResult, settings Settings) SeasonSummary {
	points := make([]int, 0, len(rounds))
	var netScores []int
	for _, r := range rounds {
		points = append(points, RoundPoints(r, settings))
		if r.NetTotal != nil {
			netScores = append(netScores, *r.NetTotal)
		}
	}

	roundsPlayed := len(rounds)

	sorted := make([]int, len(points))
	copy(sorted, points)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	counted := sorted
	if settings.CountBestRounds > 0 && settings.CountBestRounds < roundsPlayed {
		counted = sorted[:settings.CountBestRounds]
	}

	totalPoints := 0
	for _, p := range counted {
		totalPoints += p
	}

	stats := Stats{}
	if len(netScores) > 0 {
		sum := 0
		best, worst := netScores[0], netScores[0]
		for _, s := range netScores {
			sum += s
			if s < best {
				best = s
			}
			if s > worst {
				worst = s
			}
		}
		avg := float64(sum) / float64(len(netScores))
		stats.AvgScore = &avg
		stats.BestRound = &best
		stats.WorstRound = &worst
	}
	if len(counted) > 0 {
		stats.AvgPoints = float64(totalPoints) / float64(len(counted))
	}

	return SeasonSummary{
		TotalPoints:   totalPoints,
		RoundsPlayed:  roundsPlayed,
		CountedRounds: len(counted),
		Stats:         stats,
	}
}
