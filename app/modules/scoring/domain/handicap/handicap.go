// Package handicap implements the USGA-style handicap math: course and
// playing handicaps, per-hole stroke allocation, and net scoring.
//
// All functions are pure. Inputs are assumed pre-validated by the caller.
package handicap

import (
	"math"
	"sort"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// neutralSlope is the slope rating of a course of standard difficulty.
const neutralSlope = 113

// CourseHandicap converts a handicap index into a course handicap for a
// specific tee:
//
//	round(index x slope/113 + (rating - par))
//
// Rounding is half-away-from-zero.
func CourseHandicap(handicapIndex float64, slopeRating int, courseRating float64, par int) int {
	return int(math.Round(handicapIndex*(float64(slopeRating)/neutralSlope) + (courseRating - float64(par))))
}

// PlayingHandicap is the course handicap scaled by the event's handicap
// percentage and capped when a cap is configured. The cap only ever lowers
// the result.
func PlayingHandicap(handicapIndex float64, slopeRating int, courseRating float64, par int, handicapPct int, handicapCap *int) int {
	courseHandicap := CourseHandicap(handicapIndex, slopeRating, courseRating, par)

	playing := int(math.Round(float64(courseHandicap) * float64(handicapPct) / 100))
	if handicapCap != nil && playing > *handicapCap {
		playing = *handicapCap
	}
	return playing
}

// SimplePlayingHandicap applies the percentage and cap directly to a raw
// handicap. Used when the tee has no slope/rating data on file.
func SimplePlayingHandicap(handicap float64, handicapPct int, handicapCap *int) int {
	adjusted := handicap * float64(handicapPct) / 100
	if handicapCap != nil && adjusted > float64(*handicapCap) {
		adjusted = float64(*handicapCap)
	}
	return int(math.Round(adjusted))
}

// StrokesPerHole distributes a playing handicap across 18 holes by stroke
// index: one stroke each to the lowest-index min(18, |handicap|) holes, then
// a second stroke to the lowest-index |handicap|-18 holes for handicaps above
// 18. The returned slice is indexed by hole number - 1 and every entry is
// 0, 1, or 2.
//
// Plus handicaps are allocated by absolute value; strokes are always
// subtracted from gross, never added.
func StrokesPerHole(playingHandicap int, holes []scoringdomain.HoleDefinition) []int {
	strokesPerHole := make([]int, 18)

	sorted := make([]scoringdomain.HoleDefinition, len(holes))
	copy(sorted, holes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StrokeIndex < sorted[j].StrokeIndex
	})

	remaining := playingHandicap
	if remaining < 0 {
		remaining = -remaining
	}

	for i := 0; i < len(sorted) && i < 18 && i < remaining; i++ {
		strokesPerHole[sorted[i].HoleNumber-1] = 1
	}

	remaining -= 18
	for i := 0; i < len(sorted) && i < 18 && i < remaining; i++ {
		strokesPerHole[sorted[i].HoleNumber-1] = 2
	}

	return strokesPerHole
}

// NetScore applies received strokes to a gross score, flooring at zero.
func NetScore(gross, strokesReceived int) int {
	net := gross - strokesReceived
	if net < 0 {
		return 0
	}
	return net
}

// Differential computes the score differential used when revising a handicap
// index: (adjusted gross - rating) x 113/slope.
func Differential(adjustedGross float64, courseRating float64, slopeRating int) float64 {
	return (adjustedGross - courseRating) * neutralSlope / float64(slopeRating)
}
