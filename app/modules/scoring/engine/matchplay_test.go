package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// cardFromNets builds an 18-hole card with the given net scores.
func cardFromNets(nets []int) []scoringdomain.HoleScoreResult {
	holes := make([]scoringdomain.HoleScoreResult, len(nets))
	for i, n := range nets {
		holes[i] = scoringdomain.HoleScoreResult{
			HoleNumber: i + 1,
			Strokes:    n,
			NetStrokes: n,
		}
	}
	return holes
}

func repeatNets(value, count int) []int {
	nets := make([]int, count)
	for i := range nets {
		nets[i] = value
	}
	return nets
}

func TestCompareMatchPlayDormie(t *testing.T) {
	eng := NewMatchPlay()

	// A wins every hole; the match is decided once the lead exceeds the
	// holes remaining. After 10 holes A is 10 up with 8 to play.
	comparison := eng.CompareMatchPlay(cardFromNets(repeatNets(3, 18)), cardFromNets(repeatNets(5, 18)))

	assert.Equal(t, WinnerA, comparison.Winner)
	assert.Equal(t, "10&8", comparison.Result)
	require.NotNil(t, comparison.PlayerA.HolesWon)
	assert.Equal(t, 10, *comparison.PlayerA.HolesWon)
	assert.Equal(t, "10&8", comparison.PlayerA.MatchResult)
	assert.Empty(t, comparison.PlayerB.MatchResult)
}

func TestCompareMatchPlayOneUp(t *testing.T) {
	eng := NewMatchPlay()

	// All square until B drops the last hole.
	netsA := repeatNets(4, 18)
	netsB := repeatNets(4, 18)
	netsB[17] = 5

	comparison := eng.CompareMatchPlay(cardFromNets(netsA), cardFromNets(netsB))

	assert.Equal(t, WinnerA, comparison.Winner)
	assert.Equal(t, "1 up", comparison.Result)
}

func TestCompareMatchPlayAllSquare(t *testing.T) {
	eng := NewMatchPlay()

	comparison := eng.CompareMatchPlay(cardFromNets(repeatNets(4, 18)), cardFromNets(repeatNets(4, 18)))

	assert.Equal(t, WinnerTie, comparison.Winner)
	assert.Equal(t, "AS", comparison.Result)
	require.NotNil(t, comparison.PlayerA.HolesTied)
	assert.Equal(t, 18, *comparison.PlayerA.HolesTied)
	assert.Empty(t, comparison.PlayerA.MatchResult)
	assert.Empty(t, comparison.PlayerB.MatchResult)
}

func TestCompareMatchPlayThreeAndTwo(t *testing.T) {
	eng := NewMatchPlay()

	// B takes the first three holes, halves the rest: decided on 16 when B
	// is 3 up with 2 to play.
	netsA := repeatNets(4, 18)
	netsB := repeatNets(4, 18)
	netsB[0], netsB[1], netsB[2] = 3, 3, 3

	comparison := eng.CompareMatchPlay(cardFromNets(netsA), cardFromNets(netsB))

	assert.Equal(t, WinnerB, comparison.Winner)
	assert.Equal(t, "3&2", comparison.Result)
}

func TestMatchPlayCompareScores(t *testing.T) {
	eng := NewMatchPlay()

	ahead := scoringdomain.TotalScoreResult{
		HolesWon:  scoringdomain.IntPtr(6),
		HolesLost: scoringdomain.IntPtr(2),
	}
	behind := scoringdomain.TotalScoreResult{
		HolesWon:  scoringdomain.IntPtr(2),
		HolesLost: scoringdomain.IntPtr(6),
	}
	assert.Negative(t, eng.CompareScores(ahead, behind))
	assert.Zero(t, eng.CompareScores(ahead, ahead))
}

func TestMatchPlayLeaderboardDisplay(t *testing.T) {
	eng := NewMatchPlay()

	decided := scoringdomain.TotalScoreResult{MatchResult: "2&1"}
	assert.Equal(t, "2&1", eng.LeaderboardDisplay(decided))

	up := scoringdomain.TotalScoreResult{
		HolesWon:  scoringdomain.IntPtr(5),
		HolesLost: scoringdomain.IntPtr(3),
	}
	assert.Equal(t, "2 up", eng.LeaderboardDisplay(up))

	down := scoringdomain.TotalScoreResult{
		HolesWon:  scoringdomain.IntPtr(3),
		HolesLost: scoringdomain.IntPtr(5),
	}
	assert.Equal(t, "2 down", eng.LeaderboardDisplay(down))

	square := scoringdomain.TotalScoreResult{}
	assert.Equal(t, "AS", eng.LeaderboardDisplay(square))
}
