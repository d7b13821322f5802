package engine

import (
	"math"
	"sort"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/domain/handicap"
)

// Scramble scores a team that plays every shot from the best ball position.
// The input card already holds the single team score per hole; team handicap
// allocation is the caller's concern.
type Scramble struct {
	teamSize int
}

func NewScramble(cfg scoringdomain.ScoringConfig) *Scramble {
	return &Scramble{teamSize: cfg.TeamSize}
}

func (e *Scramble) Format() scoringdomain.Format {
	return scoringdomain.FormatScramble
}

func (e *Scramble) CalculateHoleScore(input scoringdomain.HoleScoreInput) scoringdomain.HoleScoreResult {
	return scoringdomain.HoleScoreResult{
		HoleNumber: input.HoleNumber,
		Strokes:    input.Strokes,
		NetStrokes: handicap.NetScore(input.Strokes, input.HandicapStrokes),
	}
}

func (e *Scramble) CalculateTotalScore(holes []scoringdomain.HoleScoreResult) scoringdomain.TotalScoreResult {
	gross, net := sumGrossNet(holes)
	return scoringdomain.TotalScoreResult{GrossTotal: gross, NetTotal: net}
}

func (e *Scramble) CompareScores(a, b scoringdomain.TotalScoreResult) int {
	return a.NetTotal - b.NetTotal
}

func (e *Scramble) LeaderboardDisplay(score scoringdomain.TotalScoreResult) string {
	return toParDisplay(score.NetTotal)
}

func (e *Scramble) Description() string {
	return "Scramble - team format where all players hit from the best shot. Team records one score per hole."
}

// BestBall scores a team where each player plays their own ball and the team
// counts the best N net scores per hole (N=1 unless configured).
type BestBall struct {
	countBest int
}

func NewBestBall(cfg scoringdomain.ScoringConfig) *BestBall {
	countBest := cfg.CountBest
	if countBest < 1 {
		countBest = 1
	}
	return &BestBall{countBest: countBest}
}

func (e *BestBall) Format() scoringdomain.Format {
	return scoringdomain.FormatBestBall
}

func (e *BestBall) CalculateHoleScore(input scoringdomain.HoleScoreInput) scoringdomain.HoleScoreResult {
	return scoringdomain.HoleScoreResult{
		HoleNumber: input.HoleNumber,
		Strokes:    input.Strokes,
		NetStrokes: handicap.NetScore(input.Strokes, input.HandicapStrokes),
	}
}

// CalculateBestBall reduces several players' cards to one team card: per
// hole, the average of the best countBest net scores, rounded
// half-away-from-zero. Holes nobody recorded are skipped.
func (e *BestBall) CalculateBestBall(playersHoles [][]scoringdomain.HoleScoreResult) []scoringdomain.HoleScoreResult {
	teamHoles := make([]scoringdomain.HoleScoreResult, 0, 18)

	for holeNum := 1; holeNum <= 18; holeNum++ {
		var holeScores []scoringdomain.HoleScoreResult
		for _, playerHoles := range playersHoles {
			for _, h := range playerHoles {
				if h.HoleNumber == holeNum {
					holeScores = append(holeScores, h)
					break
				}
			}
		}

		if len(holeScores) == 0 {
			continue
		}

		sort.Slice(holeScores, func(i, j int) bool {
			return holeScores[i].NetStrokes < holeScores[j].NetStrokes
		})
		count := e.countBest
		if count > len(holeScores) {
			count = len(holeScores)
		}
		best := holeScores[:count]

		netSum, grossSum := 0, 0
		for _, s := range best {
			netSum += s.NetStrokes
			grossSum += s.Strokes
		}

		teamHoles = append(teamHoles, scoringdomain.HoleScoreResult{
			HoleNumber: holeNum,
			Strokes:    roundAverage(grossSum, len(best)),
			NetStrokes: roundAverage(netSum, len(best)),
		})
	}

	return teamHoles
}

func (e *BestBall) CalculateTotalScore(holes []scoringdomain.HoleScoreResult) scoringdomain.TotalScoreResult {
	gross, net := sumGrossNet(holes)
	return scoringdomain.TotalScoreResult{GrossTotal: gross, NetTotal: net}
}

func (e *BestBall) CompareScores(a, b scoringdomain.TotalScoreResult) int {
	return a.NetTotal - b.NetTotal
}

func (e *BestBall) LeaderboardDisplay(score scoringdomain.TotalScoreResult) string {
	return toParDisplay(score.NetTotal)
}

func (e *BestBall) Description() string {
	return "Best Ball - each player plays their own ball. Team score on each hole is the lowest net score among team members."
}

func roundAverage(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
