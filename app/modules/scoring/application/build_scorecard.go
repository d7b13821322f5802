package scoringservice

import (
	"fmt"
	"log/slog"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/domain/handicap"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/engine"
)

// playingHandicapFor resolves a player's playing handicap under a round setup.
// Players without a handicap index play off zero. With a tee rating on file
// the full course-handicap path applies, otherwise the simplified one.
func playingHandicapFor(player scoringdomain.ParticipantRef, setup scoringdomain.RoundSetup) int {
	if player.HandicapIndex == nil {
		return 0
	}

	pct := setup.HandicapPct
	if pct == 0 {
		pct = 100
	}

	if setup.Rating != nil {
		return handicap.PlayingHandicap(
			*player.HandicapIndex,
			setup.Rating.SlopeRating,
			setup.Rating.CourseRating,
			setup.Rating.TotalPar,
			pct,
			setup.HandicapCap,
		)
	}
	return handicap.SimplePlayingHandicap(*player.HandicapIndex, pct, setup.HandicapCap)
}

// BuildScorecard computes one player's card from raw strokes: allocates
// handicap strokes by stroke index, scores each recorded hole through the
// format engine, and fills totals only when all 18 holes are in.
func BuildScorecard(setup scoringdomain.RoundSetup, card scoringdomain.PlayerCard, eng engine.Engine) scoringdomain.Scorecard {
	playing := playingHandicapFor(card.Player, setup)
	strokesPerHole := handicap.StrokesPerHole(playing, setup.Holes)

	holes := make([]scoringdomain.HoleScoreResult, 0, len(setup.Holes))
	for _, hole := range setup.Holes {
		idx := hole.HoleNumber - 1
		if idx < 0 || idx >= len(card.Strokes) || card.Strokes[idx] == nil {
			continue
		}

		holes = append(holes, eng.CalculateHoleScore(scoringdomain.HoleScoreInput{
			HoleNumber:      hole.HoleNumber,
			Strokes:         *card.Strokes[idx],
			Par:             hole.Par,
			HandicapStrokes: strokesPerHole[idx],
		}))
	}

	result := scoringdomain.Scorecard{
		MemberID:        card.Player.MemberID,
		DisplayName:     card.Player.DisplayName,
		Format:          eng.Format(),
		PlayingHandicap: playing,
		Holes:           holes,
	}

	if result.Complete() {
		total := eng.CalculateTotalScore(holes)
		result.GrossTotal = &total.GrossTotal
		result.NetTotal = &total.NetTotal
		result.TotalPoints = total.TotalPoints
	}

	return result
}

// validateSetup rejects setups the engine cannot score.
func validateSetup(setup scoringdomain.RoundSetup) error {
	if len(setup.Holes) != 18 {
		return fmt.Errorf("round setup must define 18 holes, got %d", len(setup.Holes))
	}

	seen := make(map[int]bool, 18)
	for _, hole := range setup.Holes {
		if hole.HoleNumber < 1 || hole.HoleNumber > 18 {
			return fmt.Errorf("hole number %d out of range", hole.HoleNumber)
		}
		if seen[hole.HoleNumber] {
			return fmt.Errorf("duplicate hole number %d", hole.HoleNumber)
		}
		seen[hole.HoleNumber] = true

		if hole.StrokeIndex < 1 || hole.StrokeIndex > 18 {
			return fmt.Errorf("hole %d has stroke index %d out of range", hole.HoleNumber, hole.StrokeIndex)
		}
	}
	return nil
}

// buildRoundScorecards scores every player of a round under a shared engine.
func buildRoundScorecards(setup scoringdomain.RoundSetup, players []scoringdomain.PlayerCard, logger *slog.Logger) ([]scoringdomain.Scorecard, error) {
	if err := validateSetup(setup); err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("round has no players")
	}

	eng := engine.New(setup.Format, setup.Config, logger)

	cards := make([]scoringdomain.Scorecard, 0, len(players))
	for _, player := range players {
		cards = append(cards, BuildScorecard(setup, player, eng))
	}
	return cards, nil
}
