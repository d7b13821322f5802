package skins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNames = map[string]string{
	"m1": "Alice",
	"m2": "Bob",
	"m3": "Carol",
}

// holeScores builds one hole's scores for the three test members.
func holeScores(hole, netA, netB, netC int) []HoleScore {
	return []HoleScore{
		{MemberID: "m1", HoleNumber: hole, NetStrokes: netA},
		{MemberID: "m2", HoleNumber: hole, NetStrokes: netB},
		{MemberID: "m3", HoleNumber: hole, NetStrokes: netC},
	}
}

func TestCalculateSingleWinner(t *testing.T) {
	cfg := Config{Carryover: true, Value: 100, EligibleHoles: []int{1}}

	results, totals := Calculate(holeScores(1, 3, 4, 5), testNames, cfg)

	require.Len(t, results, 1)
	assert.Equal(t, "m1", results[0].WinnerID)
	assert.Equal(t, "Alice", results[0].WinnerName)
	assert.Equal(t, 100, results[0].Value)
	assert.False(t, results[0].Tied)
	assert.Len(t, results[0].Participants, 3)

	assert.Equal(t, 1, totals["m1"].SkinsWon)
	assert.Equal(t, 100, totals["m1"].TotalValue)
	assert.Equal(t, []int{1}, totals["m1"].Holes)
	assert.Equal(t, 0, totals["m2"].SkinsWon)
}

func TestCalculateCarryover(t *testing.T) {
	cfg := Config{Carryover: true, Value: 100, EligibleHoles: []int{1, 2, 3}}

	scores := holeScores(1, 4, 4, 5)
	scores = append(scores, holeScores(2, 4, 4, 4)...)
	scores = append(scores, holeScores(3, 3, 4, 4)...)

	results, totals := Calculate(scores, testNames, cfg)

	require.Len(t, results, 3)
	assert.True(t, results[0].Tied)
	assert.True(t, results[1].Tied)
	assert.Equal(t, 100, results[1].CarriedOver)

	// Hole 3 pays its own value plus two carried holes.
	assert.Equal(t, "m1", results[2].WinnerID)
	assert.Equal(t, 300, results[2].Value)
	assert.Equal(t, 200, results[2].CarriedOver)
	assert.Equal(t, 300, totals["m1"].TotalValue)
}

func TestCalculateNoCarryover(t *testing.T) {
	cfg := Config{Carryover: false, Value: 100, EligibleHoles: []int{1, 2}}

	scores := holeScores(1, 4, 4, 5)
	scores = append(scores, holeScores(2, 3, 4, 4)...)

	results, _ := Calculate(scores, testNames, cfg)

	require.Len(t, results, 2)
	assert.Equal(t, 100, results[1].Value, "tied hole value is forfeited without carryover")
	assert.Equal(t, 0, results[1].CarriedOver)
}

// A final-hole tie with pot on the table splits the leftover across every
// participant in the round, floor division. This is the payout the app has
// always produced, so changes here are breaking.
func TestCalculateFinalHoleTieSplitsPot(t *testing.T) {
	cfg := Config{Carryover: true, Value: 100, EligibleHoles: []int{17, 18}}

	scores := holeScores(17, 4, 4, 5)
	scores = append(scores, holeScores(18, 4, 4, 4)...)

	_, totals := Calculate(scores, testNames, cfg)

	// 100 carried into 18, tied again: 200 left on the table, 66 each.
	for _, memberID := range []string{"m1", "m2", "m3"} {
		assert.Equal(t, 0, totals[memberID].SkinsWon)
		assert.Equal(t, 66, totals[memberID].TotalValue, "member %s splits the pot", memberID)
	}
}

func TestCalculateAutoCarryLeavesPotUnresolved(t *testing.T) {
	cfg := Config{Carryover: true, Value: 100, EligibleHoles: []int{18}, AutoCarryLastHole: true}

	_, totals := Calculate(holeScores(18, 4, 4, 4), testNames, cfg)

	for _, total := range totals {
		assert.Equal(t, 0, total.TotalValue)
	}
}

func TestCalculateSkipsHolesWithoutScores(t *testing.T) {
	cfg := DefaultConfig()

	results, _ := Calculate(holeScores(5, 3, 4, 4), testNames, cfg)

	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].HoleNumber)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Carryover)
	assert.Equal(t, 100, cfg.Value)
	assert.Len(t, cfg.EligibleHoles, 18)
	assert.False(t, cfg.AutoCarryLastHole)
}

func TestLeaderboardOrderingAndTies(t *testing.T) {
	totals := Totals{
		"m1": {SkinsWon: 2, TotalValue: 300, Holes: []int{1, 5}},
		"m2": {SkinsWon: 2, TotalValue: 300, Holes: []int{2, 9}},
		"m3": {SkinsWon: 1, TotalValue: 100, Holes: []int{12}},
	}

	entries := Leaderboard(totals, testNames)

	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 1, entries[1].Position, "equal skins and value share a position")
	assert.Equal(t, 3, entries[2].Position)
	assert.Equal(t, "m3", entries[2].MemberID)
}

func TestLeaderboardUnknownMemberName(t *testing.T) {
	totals := Totals{"ghost": {SkinsWon: 1, TotalValue: 100, Holes: []int{3}}}

	entries := Leaderboard(totals, map[string]string{})

	require.Len(t, entries, 1)
	assert.Equal(t, "Unknown", entries[0].Name)
}
