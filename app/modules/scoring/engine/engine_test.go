package engine

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// evenParCard is a complete 18-hole card at net par on a par-72 layout.
func evenParCard() []scoringdomain.HoleScoreResult {
	holes := make([]scoringdomain.HoleScoreResult, 18)
	for i := 0; i < 18; i++ {
		holes[i] = scoringdomain.HoleScoreResult{
			HoleNumber: i + 1,
			Strokes:    4,
			NetStrokes: 4,
		}
	}
	return holes
}

func TestNewSelectsEngineByFormat(t *testing.T) {
	cfg := scoringdomain.ScoringConfig{}
	for _, format := range []scoringdomain.Format{
		scoringdomain.FormatStrokePlay,
		scoringdomain.FormatStableford,
		scoringdomain.FormatModifiedStableford,
		scoringdomain.FormatMatchPlay,
		scoringdomain.FormatScramble,
		scoringdomain.FormatBestBall,
	} {
		eng := New(format, cfg, nil)
		require.NotNil(t, eng)
		assert.Equal(t, format, eng.Format())
	}
}

func TestNewUnknownFormatFallsBackToStrokePlay(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	eng := New(scoringdomain.Format("SPEED_GOLF"), scoringdomain.ScoringConfig{}, logger)
	assert.Equal(t, scoringdomain.FormatStrokePlay, eng.Format())
	assert.Contains(t, buf.String(), "Unknown scoring format")
}

func TestStrokePlayScoring(t *testing.T) {
	eng := NewStrokePlay()

	hole := eng.CalculateHoleScore(scoringdomain.HoleScoreInput{
		HoleNumber:      1,
		Strokes:         5,
		Par:             4,
		HandicapStrokes: 1,
	})
	assert.Equal(t, 4, hole.NetStrokes)
	assert.Nil(t, hole.Points)

	total := eng.CalculateTotalScore(evenParCard())
	assert.Equal(t, 72, total.GrossTotal)
	assert.Equal(t, 72, total.NetTotal)

	better := scoringdomain.TotalScoreResult{NetTotal: 70}
	worse := scoringdomain.TotalScoreResult{NetTotal: 74}
	assert.Negative(t, eng.CompareScores(better, worse))
	assert.Zero(t, eng.CompareScores(better, better))

	assert.Equal(t, "E", eng.LeaderboardDisplay(total))
	assert.Equal(t, "-2", eng.LeaderboardDisplay(better))
	assert.Equal(t, "+2", eng.LeaderboardDisplay(worse))
}

func TestStablefordPoints(t *testing.T) {
	eng := NewStableford(scoringdomain.ScoringConfig{})

	tests := []struct {
		name       string
		strokes    int
		handicap   int
		par        int
		wantPoints int
	}{
		{name: "albatross", strokes: 2, par: 5, wantPoints: 5},
		{name: "eagle", strokes: 3, par: 5, wantPoints: 4},
		{name: "birdie", strokes: 3, par: 4, wantPoints: 3},
		{name: "par", strokes: 4, par: 4, wantPoints: 2},
		{name: "bogey", strokes: 5, par: 4, wantPoints: 1},
		{name: "double bogey", strokes: 6, par: 4, wantPoints: 0},
		{name: "worse than double", strokes: 9, par: 4, wantPoints: 0},
		{name: "handicap stroke turns bogey into par", strokes: 5, handicap: 1, par: 4, wantPoints: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eng.CalculateHoleScore(scoringdomain.HoleScoreInput{
				HoleNumber:      1,
				Strokes:         tt.strokes,
				Par:             tt.par,
				HandicapStrokes: tt.handicap,
			})
			require.NotNil(t, result.Points)
			assert.Equal(t, tt.wantPoints, *result.Points)
		})
	}
}

func TestStablefordTotalAndOrdering(t *testing.T) {
	eng := NewStableford(scoringdomain.ScoringConfig{})

	// Net par on every hole is 2 points a hole, 36 for the round.
	holes := make([]scoringdomain.HoleScoreResult, 18)
	for i := 0; i < 18; i++ {
		holes[i] = eng.CalculateHoleScore(scoringdomain.HoleScoreInput{
			HoleNumber: i + 1,
			Strokes:    4,
			Par:        4,
		})
	}

	total := eng.CalculateTotalScore(holes)
	require.NotNil(t, total.TotalPoints)
	assert.Equal(t, 36, *total.TotalPoints)
	assert.Equal(t, "36 pts", eng.LeaderboardDisplay(total))

	higher := scoringdomain.TotalScoreResult{TotalPoints: scoringdomain.IntPtr(40)}
	assert.Negative(t, eng.CompareScores(higher, total), "more points ranks first")
}

func TestModifiedStablefordNegativePoints(t *testing.T) {
	eng := NewModifiedStableford(scoringdomain.ScoringConfig{})

	tests := []struct {
		name       string
		strokes    int
		par        int
		wantPoints int
	}{
		{name: "eagle", strokes: 3, par: 5, wantPoints: 5},
		{name: "birdie", strokes: 3, par: 4, wantPoints: 2},
		{name: "par", strokes: 4, par: 4, wantPoints: 0},
		{name: "bogey", strokes: 5, par: 4, wantPoints: -1},
		{name: "double bogey", strokes: 6, par: 4, wantPoints: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eng.CalculateHoleScore(scoringdomain.HoleScoreInput{
				HoleNumber: 1,
				Strokes:    tt.strokes,
				Par:        tt.par,
			})
			require.NotNil(t, result.Points)
			assert.Equal(t, tt.wantPoints, *result.Points)
		})
	}
}

func TestStablefordCustomTable(t *testing.T) {
	table := scoringdomain.PointsTable{Albatross: 10, Eagle: 8, Birdie: 4, Par: 1}
	eng := NewStableford(scoringdomain.ScoringConfig{StablefordPoints: &table})

	result := eng.CalculateHoleScore(scoringdomain.HoleScoreInput{HoleNumber: 1, Strokes: 3, Par: 4})
	require.NotNil(t, result.Points)
	assert.Equal(t, 4, *result.Points)
}
