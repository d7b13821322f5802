package scoringservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// completedCard builds a persisted-style card at the given uniform net score.
func completedCard(memberID, name string, format scoringdomain.Format, net int) scoringdomain.Scorecard {
	holes := make([]scoringdomain.HoleScoreResult, 18)
	gross, netTotal := 0, 0
	for i := 0; i < 18; i++ {
		holes[i] = scoringdomain.HoleScoreResult{HoleNumber: i + 1, Strokes: net, NetStrokes: net}
		gross += net
		netTotal += net
	}
	return scoringdomain.Scorecard{
		MemberID:    memberID,
		DisplayName: name,
		Format:      format,
		Holes:       holes,
		GrossTotal:  &gross,
		NetTotal:    &netTotal,
	}
}

func repoReturning(cards []scoringdomain.Scorecard) *FakeScorecardRepository {
	return &FakeScorecardRepository{
		GetRoundScorecardsFn: func(context.Context, bun.IDB, uuid.UUID) ([]scoringdomain.Scorecard, error) {
			return cards, nil
		},
	}
}

func TestGetRoundLeaderboardRanksByNet(t *testing.T) {
	cards := []scoringdomain.Scorecard{
		completedCard("m1", "Alice", scoringdomain.FormatStrokePlay, 5),
		completedCard("m2", "Bob", scoringdomain.FormatStrokePlay, 4),
		completedCard("m3", "Carol", scoringdomain.FormatStrokePlay, 4),
	}
	service := newTestService(repoReturning(cards))

	entries, err := service.GetRoundLeaderboard(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 1, entries[1].Position, "tied nets share a position")
	assert.Equal(t, 3, entries[2].Position)
	assert.Equal(t, "m1", entries[2].MemberID)
	assert.Equal(t, "E", entries[0].Display)
}

func TestGetRoundLeaderboardIncompleteSortsLast(t *testing.T) {
	partial := scoringdomain.Scorecard{
		MemberID:    "m3",
		DisplayName: "Carol",
		Format:      scoringdomain.FormatStrokePlay,
		Holes:       []scoringdomain.HoleScoreResult{{HoleNumber: 1, Strokes: 3, NetStrokes: 3}},
	}
	cards := []scoringdomain.Scorecard{
		partial,
		completedCard("m1", "Alice", scoringdomain.FormatStrokePlay, 4),
	}
	service := newTestService(repoReturning(cards))

	entries, err := service.GetRoundLeaderboard(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "m1", entries[0].MemberID)
	assert.True(t, entries[0].Complete)

	assert.Equal(t, "m3", entries[1].MemberID)
	assert.False(t, entries[1].Complete)
	assert.Zero(t, entries[1].Position, "incomplete cards are unranked")
	assert.Empty(t, entries[1].Display)
}

func TestGetRoundLeaderboardEmptyRound(t *testing.T) {
	service := newTestService(repoReturning(nil))

	entries, err := service.GetRoundLeaderboard(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetRoundMatchupsPairsInOrder(t *testing.T) {
	cards := []scoringdomain.Scorecard{
		completedCard("m1", "Alice", scoringdomain.FormatMatchPlay, 3),
		completedCard("m2", "Bob", scoringdomain.FormatMatchPlay, 4),
		completedCard("m3", "Carol", scoringdomain.FormatMatchPlay, 4),
		completedCard("m4", "Dave", scoringdomain.FormatMatchPlay, 5),
	}
	service := newTestService(repoReturning(cards))

	matchups, err := service.GetRoundMatchups(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, matchups, 2)
	assert.Equal(t, "m1", matchups[0].PlayerA)
	assert.Equal(t, "m2", matchups[0].PlayerB)
	assert.Equal(t, "m1", matchups[0].WinnerID)
	assert.Equal(t, "m3", matchups[1].PlayerA)
	assert.Equal(t, "m4", matchups[1].PlayerB)
}

func TestGetRoundMatchupsNonMatchPlayFormat(t *testing.T) {
	cards := []scoringdomain.Scorecard{
		completedCard("m1", "Alice", scoringdomain.FormatStrokePlay, 4),
		completedCard("m2", "Bob", scoringdomain.FormatStrokePlay, 5),
	}
	service := newTestService(repoReturning(cards))

	matchups, err := service.GetRoundMatchups(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, matchups)
}
