package engine

import (
	"fmt"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/domain/handicap"
)

// MatchPlay scores hole-by-hole against an opponent. A single card cannot
// decide a match; pair two cards through CompareMatchPlay. The hole/total
// methods still produce gross/net numbers so match play cards round-trip
// through the common pipeline.
type MatchPlay struct{}

func NewMatchPlay() *MatchPlay {
	return &MatchPlay{}
}

// Winner identifies the outcome of a paired comparison.
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "TIE"
)

// MatchComparison is the outcome of pairing two cards hole-by-hole.
type MatchComparison struct {
	PlayerA scoringdomain.TotalScoreResult
	PlayerB scoringdomain.TotalScoreResult
	// Result is the match notation: "3&2", "1 up", or "AS".
	Result string
	Winner Winner
}

func (e *MatchPlay) Format() scoringdomain.Format {
	return scoringdomain.FormatMatchPlay
}

func (e *MatchPlay) CalculateHoleScore(input scoringdomain.HoleScoreInput) scoringdomain.HoleScoreResult {
	return scoringdomain.HoleScoreResult{
		HoleNumber: input.HoleNumber,
		Strokes:    input.Strokes,
		NetStrokes: handicap.NetScore(input.Strokes, input.HandicapStrokes),
	}
}

func (e *MatchPlay) CalculateTotalScore(holes []scoringdomain.HoleScoreResult) scoringdomain.TotalScoreResult {
	gross, net := sumGrossNet(holes)
	zero := 0
	return scoringdomain.TotalScoreResult{
		GrossTotal:  gross,
		NetTotal:    net,
		HolesWon:    &zero,
		HolesLost:   &zero,
		HolesTied:   &zero,
		MatchResult: "AS",
	}
}

func (e *MatchPlay) CompareScores(a, b scoringdomain.TotalScoreResult) int {
	// Higher won-lost differential is better
	return matchDiff(b) - matchDiff(a)
}

// CompareMatchPlay walks two cards in hole order, tracking who is up. The
// walk stops as soon as the leading margin exceeds the holes remaining
// (dormie rule): the match is mathematically decided.
func (e *MatchPlay) CompareMatchPlay(playerA, playerB []scoringdomain.HoleScoreResult) MatchComparison {
	holesWonA, holesWonB, holesTied := 0, 0, 0
	// Positive = A ahead, negative = B ahead.
	status := 0

	holes := len(playerA)
	if len(playerB) < holes {
		holes = len(playerB)
	}

	for i := 0; i < holes; i++ {
		switch {
		case playerA[i].NetStrokes < playerB[i].NetStrokes:
			holesWonA++
			status++
		case playerA[i].NetStrokes > playerB[i].NetStrokes:
			holesWonB++
			status--
		default:
			holesTied++
		}

		remaining := 18 - (i + 1)
		if abs(status) > remaining {
			break
		}
	}

	played := holesWonA + holesWonB + holesTied
	remaining := 18 - played

	var result string
	var winner Winner
	switch {
	case holesWonA > holesWonB:
		result = matchNotation(holesWonA-holesWonB, remaining)
		winner = WinnerA
	case holesWonB > holesWonA:
		result = matchNotation(holesWonB-holesWonA, remaining)
		winner = WinnerB
	default:
		result = "AS"
		winner = WinnerTie
	}

	grossA, netA := sumGrossNet(playerA)
	grossB, netB := sumGrossNet(playerB)

	scoreA := scoringdomain.TotalScoreResult{
		GrossTotal: grossA,
		NetTotal:   netA,
		HolesWon:   scoringdomain.IntPtr(holesWonA),
		HolesLost:  scoringdomain.IntPtr(holesWonB),
		HolesTied:  scoringdomain.IntPtr(holesTied),
	}
	scoreB := scoringdomain.TotalScoreResult{
		GrossTotal: grossB,
		NetTotal:   netB,
		HolesWon:   scoringdomain.IntPtr(holesWonB),
		HolesLost:  scoringdomain.IntPtr(holesWonA),
		HolesTied:  scoringdomain.IntPtr(holesTied),
	}
	if winner == WinnerA {
		scoreA.MatchResult = result
	}
	if winner == WinnerB {
		scoreB.MatchResult = result
	}

	return MatchComparison{
		PlayerA: scoreA,
		PlayerB: scoreB,
		Result:  result,
		Winner:  winner,
	}
}

func (e *MatchPlay) LeaderboardDisplay(score scoringdomain.TotalScoreResult) string {
	if score.MatchResult != "" {
		return score.MatchResult
	}
	diff := matchDiff(score)
	switch {
	case diff > 0:
		return fmt.Sprintf("%d up", diff)
	case diff < 0:
		return fmt.Sprintf("%d down", -diff)
	default:
		return "AS"
	}
}

func (e *MatchPlay) Description() string {
	return "Match Play - compete hole-by-hole against an opponent. Win the hole with the lowest net score. Match is won when opponent cannot catch up."
}

// matchNotation renders "3&2" when the match ended early, "2 up" otherwise.
func matchNotation(margin, remaining int) string {
	if remaining > 0 {
		return fmt.Sprintf("%d&%d", margin, remaining)
	}
	return fmt.Sprintf("%d up", margin)
}

func matchDiff(score scoringdomain.TotalScoreResult) int {
	won, lost := 0, 0
	if score.HolesWon != nil {
		won = *score.HolesWon
	}
	if score.HolesLost != nil {
		lost = *score.HolesLost
	}
	return won - lost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
