package handicap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

func intPtr(v int) *int { return &v }

func TestCourseHandicap(t *testing.T) {
	tests := []struct {
		name         string
		index        float64
		slope        int
		rating       float64
		par          int
		want         int
	}{
		{name: "neutral slope, rating equals par", index: 10.0, slope: 113, rating: 72.0, par: 72, want: 10},
		{name: "steep slope raises handicap", index: 10.0, slope: 135, rating: 72.0, par: 72, want: 12},
		{name: "rating above par adds strokes", index: 12.4, slope: 130, rating: 74.2, par: 72, want: 16},
		{name: "scratch player", index: 0.0, slope: 125, rating: 71.5, par: 72, want: -1},
		{name: "plus handicap", index: -2.0, slope: 113, rating: 72.0, par: 72, want: -2},
		{name: "half rounds away from zero", index: 9.5, slope: 113, rating: 72.0, par: 72, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseHandicap(tt.index, tt.slope, tt.rating, tt.par)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayingHandicap(t *testing.T) {
	tests := []struct {
		name   string
		index  float64
		pct    int
		cap    *int
		want   int
	}{
		{name: "full allowance", index: 10.0, pct: 100, want: 10},
		{name: "85 percent allowance", index: 10.0, pct: 85, want: 9},
		{name: "cap lowers result", index: 30.0, pct: 100, cap: intPtr(18), want: 18},
		{name: "cap does not raise result", index: 5.0, pct: 100, cap: intPtr(18), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlayingHandicap(tt.index, 113, 72.0, 72, tt.pct, tt.cap)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimplePlayingHandicap(t *testing.T) {
	tests := []struct {
		name     string
		handicap float64
		pct      int
		cap      *int
		want     int
	}{
		{name: "full allowance rounds", handicap: 14.4, pct: 100, want: 14},
		{name: "percentage applied before rounding", handicap: 20.0, pct: 85, want: 17},
		{name: "cap applies after percentage", handicap: 40.0, pct: 100, cap: intPtr(24), want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplePlayingHandicap(tt.handicap, tt.pct, tt.cap)
			assert.Equal(t, tt.want, got)
		})
	}
}

func standardHoles() []scoringdomain.HoleDefinition {
	holes := make([]scoringdomain.HoleDefinition, 18)
	for i := 0; i < 18; i++ {
		holes[i] = scoringdomain.HoleDefinition{
			HoleNumber:  i + 1,
			Par:         4,
			StrokeIndex: i + 1,
		}
	}
	return holes
}

func TestStrokesPerHole(t *testing.T) {
	tests := []struct {
		name            string
		playingHandicap int
		wantSum         int
		wantMax         int
	}{
		{name: "zero handicap gets nothing", playingHandicap: 0, wantSum: 0, wantMax: 0},
		{name: "nine strokes on nine lowest indexes", playingHandicap: 9, wantSum: 9, wantMax: 1},
		{name: "eighteen strokes covers every hole", playingHandicap: 18, wantSum: 18, wantMax: 1},
		{name: "above eighteen doubles up", playingHandicap: 22, wantSum: 22, wantMax: 2},
		{name: "plus handicap allocates by absolute value", playingHandicap: -3, wantSum: 3, wantMax: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strokes := StrokesPerHole(tt.playingHandicap, standardHoles())
			assert.Len(t, strokes, 18)

			sum, max := 0, 0
			for _, s := range strokes {
				sum += s
				if s > max {
					max = s
				}
			}
			assert.Equal(t, tt.wantSum, sum)
			assert.Equal(t, tt.wantMax, max)
		})
	}
}

func TestStrokesPerHoleFollowsStrokeIndex(t *testing.T) {
	// Stroke index 1 on hole 18, descending from there: a 1-handicap's only
	// stroke must land on hole 18.
	holes := make([]scoringdomain.HoleDefinition, 18)
	for i := 0; i < 18; i++ {
		holes[i] = scoringdomain.HoleDefinition{
			HoleNumber:  i + 1,
			Par:         4,
			StrokeIndex: 18 - i,
		}
	}

	strokes := StrokesPerHole(1, holes)
	assert.Equal(t, 1, strokes[17])
	for i := 0; i < 17; i++ {
		assert.Equal(t, 0, strokes[i], "hole %d should receive no stroke", i+1)
	}
}

func TestNetScore(t *testing.T) {
	assert.Equal(t, 4, NetScore(5, 1))
	assert.Equal(t, 3, NetScore(3, 0))
	assert.Equal(t, 0, NetScore(1, 2), "net score floors at zero")
}

func TestDifferential(t *testing.T) {
	assert.InDelta(t, 13.0, Differential(85.0, 72.0, 113), 0.001)
	assert.InDelta(t, 10.4, Differential(85.0, 72.5, 136), 0.05)
}
