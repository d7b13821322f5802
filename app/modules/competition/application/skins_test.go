package competitionservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	competitionevents "github.com/fairway-collective/tripcaddy/app/modules/competition/events"
	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/skins"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// skinsCard records the same net on all 18 holes.
func skinsCard(memberID, name string, net int) scoringdomain.Scorecard {
	holes := make([]scoringdomain.HoleScoreResult, 18)
	for i := range holes {
		holes[i] = scoringdomain.HoleScoreResult{HoleNumber: i + 1, Strokes: net, NetStrokes: net}
	}
	return scoringdomain.Scorecard{MemberID: memberID, DisplayName: name, Holes: holes}
}

func TestComputeRoundSkinsInlineCards(t *testing.T) {
	repo := &FakeCompetitionRepository{}
	reader := &FakeScorecardReader{}
	service := newTestService(repo, reader)

	result, err := service.ComputeRoundSkins(context.Background(), SkinsComputeRequest{
		RoundID: uuid.New(),
		Scorecards: []scoringdomain.Scorecard{
			skinsCard("m1", "Alice", 3),
			skinsCard("m2", "Bob", 4),
		},
	})

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Len(t, result.Success.HoleResults, 18)

	require.NotEmpty(t, result.Success.Leaderboard)
	leader := result.Success.Leaderboard[0]
	assert.Equal(t, "m1", leader.MemberID)
	assert.Equal(t, 18, leader.SkinsWon, "winning every hole outright sweeps the round")
	assert.Equal(t, 1800, leader.TotalValue)

	assert.Equal(t, competitiondb.KindSkins, repo.UpsertedKind)
	assert.Zero(t, reader.Calls, "inline cards skip the scorecard lookup")
}

func TestComputeRoundSkinsLoadsPersistedCards(t *testing.T) {
	reader := &FakeScorecardReader{
		GetRoundScorecardsFn: func(context.Context, bun.IDB, uuid.UUID) ([]scoringdomain.Scorecard, error) {
			return []scoringdomain.Scorecard{
				skinsCard("m1", "Alice", 4),
				skinsCard("m2", "Bob", 3),
			}, nil
		},
	}
	service := newTestService(&FakeCompetitionRepository{}, reader)

	result, err := service.ComputeRoundSkins(context.Background(), SkinsComputeRequest{RoundID: uuid.New()})

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Equal(t, 1, reader.Calls)
	assert.Equal(t, "m2", result.Success.Leaderboard[0].MemberID)
}

func TestComputeRoundSkinsCustomConfig(t *testing.T) {
	service := newTestService(&FakeCompetitionRepository{}, nil)

	result, err := service.ComputeRoundSkins(context.Background(), SkinsComputeRequest{
		RoundID: uuid.New(),
		Scorecards: []scoringdomain.Scorecard{
			skinsCard("m1", "Alice", 3),
			skinsCard("m2", "Bob", 4),
		},
		Config: skins.Config{Value: 500, EligibleHoles: []int{1, 9, 18}},
	})

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Len(t, result.Success.HoleResults, 3, "only configured holes are played for skins")
	assert.Equal(t, 1500, result.Success.Leaderboard[0].TotalValue)
}

func TestComputeRoundSkinsNoScorecards(t *testing.T) {
	repo := &FakeCompetitionRepository{}
	service := newTestService(repo, &FakeScorecardReader{})

	result, err := service.ComputeRoundSkins(context.Background(), SkinsComputeRequest{RoundID: uuid.New()})

	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Equal(t, "round has no scorecards", result.Failure.Reason)
	assert.Empty(t, repo.UpsertedKind)
}

func TestComputeRoundSkinsScorecardLookupFailure(t *testing.T) {
	reader := &FakeScorecardReader{
		GetRoundScorecardsFn: func(context.Context, bun.IDB, uuid.UUID) ([]scoringdomain.Scorecard, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := newTestService(&FakeCompetitionRepository{}, reader)

	result, err := service.ComputeRoundSkins(context.Background(), SkinsComputeRequest{RoundID: uuid.New()})

	require.NoError(t, err, "a lookup failure is handled, not propagated")
	require.True(t, result.IsFailure())
	assert.Equal(t, "failed to load scorecards", result.Failure.Reason)
}

func TestComputeRoundSkinsPersistenceError(t *testing.T) {
	repo := &FakeCompetitionRepository{
		UpsertRoundResultFn: func(context.Context, bun.IDB, uuid.UUID, string, json.RawMessage) error {
			return errors.New("connection refused")
		},
	}
	service := newTestService(repo, nil)

	_, err := service.ComputeRoundSkins(context.Background(), SkinsComputeRequest{
		RoundID:    uuid.New(),
		Scorecards: []scoringdomain.Scorecard{skinsCard("m1", "Alice", 3)},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ComputeRoundSkins")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetRoundSkins(t *testing.T) {
	roundID := uuid.New()
	stored, err := json.Marshal(competitionevents.SkinsComputedPayloadV1{
		RoundID: roundID,
		Leaderboard: []skins.LeaderboardEntry{
			{Position: 1, MemberID: "m1", Name: "Alice", SkinsWon: 3, TotalValue: 600},
		},
	})
	require.NoError(t, err)

	repo := &FakeCompetitionRepository{
		GetRoundResultFn: func(_ context.Context, _ bun.IDB, _ uuid.UUID, kind string) (json.RawMessage, error) {
			assert.Equal(t, competitiondb.KindSkins, kind)
			return stored, nil
		},
	}
	service := newTestService(repo, nil)

	computed, err := service.GetRoundSkins(context.Background(), roundID)

	require.NoError(t, err)
	assert.Equal(t, roundID, computed.RoundID)
	require.Len(t, computed.Leaderboard, 1)
	assert.Equal(t, 600, computed.Leaderboard[0].TotalValue)
}

func TestGetRoundSkinsNotComputed(t *testing.T) {
	service := newTestService(&FakeCompetitionRepository{}, nil)

	_, err := service.GetRoundSkins(context.Background(), uuid.New())

	assert.ErrorIs(t, err, competitiondb.ErrNotFound)
}
