package engine

import (
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/domain/handicap"
)

// StrokePlay is traditional scoring: lowest net total wins.
type StrokePlay struct{}

func NewStrokePlay() *StrokePlay {
	return &StrokePlay{}
}

func (e *StrokePlay) Format() scoringdomain.Format {
	return scoringdomain.FormatStrokePlay
}

func (e *StrokePlay) CalculateHoleScore(input scoringdomain.HoleScoreInput) scoringdomain.HoleScoreResult {
	return scoringdomain.HoleScoreResult{
		HoleNumber: input.HoleNumber,
		Strokes:    input.Strokes,
		NetStrokes: handicap.NetScore(input.Strokes, input.HandicapStrokes),
	}
}

func (e *StrokePlay) CalculateTotalScore(holes []scoringdomain.HoleScoreResult) scoringdomain.TotalScoreResult {
	gross, net := sumGrossNet(holes)
	return scoringdomain.TotalScoreResult{
		GrossTotal: gross,
		NetTotal:   net,
	}
}

func (e *StrokePlay) CompareScores(a, b scoringdomain.TotalScoreResult) int {
	// Lower net score is better
	return a.NetTotal - b.NetTotal
}

func (e *StrokePlay) LeaderboardDisplay(score scoringdomain.TotalScoreResult) string {
	return toParDisplay(score.NetTotal)
}

func (e *StrokePlay) Description() string {
	return "Traditional stroke play - lowest score wins. Net scores are calculated by subtracting handicap strokes from gross scores."
}
