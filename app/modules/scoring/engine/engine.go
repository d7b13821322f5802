// Package engine implements the scoring format strategy family. Each format
// is an independent Engine implementation selected by the factory; the
// engines themselves are pure and hold only immutable configuration.
package engine

import (
	"fmt"
	"log/slog"
	"strconv"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

// Engine is the capability shared by all scoring formats.
//
// CalculateTotalScore assumes a complete card: callers must not invoke it for
// rounds with unrecorded holes.
type Engine interface {
	Format() scoringdomain.Format
	CalculateHoleScore(input scoringdomain.HoleScoreInput) scoringdomain.HoleScoreResult
	CalculateTotalScore(holes []scoringdomain.HoleScoreResult) scoringdomain.TotalScoreResult
	// CompareScores returns negative if a is better, positive if b is
	// better, zero if tied.
	CompareScores(a, b scoringdomain.TotalScoreResult) int
	LeaderboardDisplay(score scoringdomain.TotalScoreResult) string
	Description() string
}

// New returns the engine for the given format. Unrecognized formats fall back
// to stroke play with a warning; selection never fails.
func New(format scoringdomain.Format, cfg scoringdomain.ScoringConfig, logger *slog.Logger) Engine {
	switch format {
	case scoringdomain.FormatStrokePlay:
		return NewStrokePlay()
	case scoringdomain.FormatStableford:
		return NewStableford(cfg)
	case scoringdomain.FormatModifiedStableford:
		return NewModifiedStableford(cfg)
	case scoringdomain.FormatMatchPlay:
		return NewMatchPlay()
	case scoringdomain.FormatScramble:
		return NewScramble(cfg)
	case scoringdomain.FormatBestBall:
		return NewBestBall(cfg)
	default:
		if logger != nil {
			logger.Warn("Unknown scoring format, defaulting to stroke play",
				attr.String("format", string(format)),
			)
		}
		return NewStrokePlay()
	}
}

// FormatInfo describes an available format for configuration UIs.
type FormatInfo struct {
	Format      scoringdomain.Format `json:"format"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
}

// AvailableFormats lists every format with its display name and description.
func AvailableFormats() []FormatInfo {
	return []FormatInfo{
		{Format: scoringdomain.FormatStrokePlay, Name: "Stroke Play", Description: NewStrokePlay().Description()},
		{Format: scoringdomain.FormatStableford, Name: "Stableford", Description: NewStableford(scoringdomain.ScoringConfig{}).Description()},
		{Format: scoringdomain.FormatModifiedStableford, Name: "Modified Stableford", Description: NewModifiedStableford(scoringdomain.ScoringConfig{}).Description()},
		{Format: scoringdomain.FormatMatchPlay, Name: "Match Play", Description: NewMatchPlay().Description()},
		{Format: scoringdomain.FormatScramble, Name: "Scramble", Description: NewScramble(scoringdomain.ScoringConfig{}).Description()},
		{Format: scoringdomain.FormatBestBall, Name: "Best Ball", Description: NewBestBall(scoringdomain.ScoringConfig{}).Description()},
	}
}

func sumGrossNet(holes []scoringdomain.HoleScoreResult) (gross, net int) {
	for _, h := range holes {
		gross += h.Strokes
		net += h.NetStrokes
	}
	return gross, net
}

// toParDisplay renders a net total relative to par 72 for leaderboards.
// TODO: thread the actual course par through TotalScoreResult instead of
// assuming 72 here.
func toParDisplay(netTotal int) string {
	toPar := netTotal - 72
	switch {
	case toPar == 0:
		return "E"
	case toPar > 0:
		return fmt.Sprintf("+%d", toPar)
	default:
		return strconv.Itoa(toPar)
	}
}
