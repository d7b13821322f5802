package competitionservice

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/flights"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

func flightField() []flights.Member {
	return []flights.Member{
		{MemberID: "m1", Name: "Alice", Handicap: 4},
		{MemberID: "m2", Name: "Bob", Handicap: 22},
		{MemberID: "m3", Name: "Carol", Handicap: 9},
		{MemberID: "m4", Name: "Dave", Handicap: 15},
	}
}

func TestCreateRoundFlightsExplicitField(t *testing.T) {
	repo := &FakeCompetitionRepository{}
	reader := &FakeScorecardReader{}
	service := newTestService(repo, reader)

	created, err := service.CreateRoundFlights(context.Background(), uuid.New(), flightField(),
		flights.Config{Method: flights.MethodEqualSize, NumberOfFlights: 2})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Flight A", created[0].Name)
	assert.Len(t, created[0].Members, 2)
	assert.Equal(t, "m1", created[0].Members[0].MemberID, "lowest handicaps fill the first flight")

	assert.Equal(t, competitiondb.KindFlights, repo.UpsertedKind)
	assert.Zero(t, reader.Calls)

	var stored storedFlights
	require.NoError(t, json.Unmarshal(repo.UpsertedPayload, &stored))
	assert.Equal(t, 2, stored.Config.NumberOfFlights)
	assert.Len(t, stored.Flights, 2)
}

func TestCreateRoundFlightsDerivesFieldFromScorecards(t *testing.T) {
	reader := &FakeScorecardReader{
		GetRoundScorecardsFn: func(context.Context, bun.IDB, uuid.UUID) ([]scoringdomain.Scorecard, error) {
			return []scoringdomain.Scorecard{
				{MemberID: "m1", DisplayName: "Alice", PlayingHandicap: 4},
				{MemberID: "m2", DisplayName: "Bob", PlayingHandicap: 22},
			}, nil
		},
	}
	service := newTestService(&FakeCompetitionRepository{}, reader)

	created, err := service.CreateRoundFlights(context.Background(), uuid.New(), nil,
		flights.Config{NumberOfFlights: 2})

	require.NoError(t, err)
	assert.Equal(t, 1, reader.Calls)
	require.Len(t, created, 2)
	assert.Equal(t, 4.0, created[0].Members[0].Handicap, "playing handicaps stand in for the roster")
}

func TestCreateRoundFlightsEmptyField(t *testing.T) {
	service := newTestService(&FakeCompetitionRepository{}, &FakeScorecardReader{})

	_, err := service.CreateRoundFlights(context.Background(), uuid.New(), nil, flights.Config{NumberOfFlights: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no members to flight")
}

func TestGetRoundFlights(t *testing.T) {
	division := flights.Create(flightField(), flights.Config{NumberOfFlights: 2})
	stored, err := json.Marshal(storedFlights{Config: flights.Config{NumberOfFlights: 2}, Flights: division})
	require.NoError(t, err)

	repo := &FakeCompetitionRepository{
		GetRoundResultFn: func(_ context.Context, _ bun.IDB, _ uuid.UUID, kind string) (json.RawMessage, error) {
			assert.Equal(t, competitiondb.KindFlights, kind)
			return stored, nil
		},
	}
	service := newTestService(repo, nil)

	got, err := service.GetRoundFlights(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "flight-0", got[0].ID)
}

func TestGetRoundFlightsNotCreated(t *testing.T) {
	service := newTestService(&FakeCompetitionRepository{}, nil)

	_, err := service.GetRoundFlights(context.Background(), uuid.New())

	assert.ErrorIs(t, err, competitiondb.ErrNotFound)
}

func TestFlightLeaderboard(t *testing.T) {
	division := flights.Create(flightField(), flights.Config{NumberOfFlights: 2})
	stored, err := json.Marshal(storedFlights{Flights: division})
	require.NoError(t, err)

	card := func(memberID, name string, net int) scoringdomain.Scorecard {
		c := skinsCard(memberID, name, 4)
		c.Format = scoringdomain.FormatStrokePlay
		gross := net
		c.GrossTotal = &gross
		c.NetTotal = &net
		return c
	}

	repo := &FakeCompetitionRepository{
		GetRoundResultFn: func(context.Context, bun.IDB, uuid.UUID, string) (json.RawMessage, error) {
			return stored, nil
		},
	}
	reader := &FakeScorecardReader{
		GetRoundScorecardsFn: func(context.Context, bun.IDB, uuid.UUID) ([]scoringdomain.Scorecard, error) {
			return []scoringdomain.Scorecard{
				card("m1", "Alice", 74),
				card("m3", "Carol", 71),
				card("m2", "Bob", 69),
				card("m4", "Dave", 80),
			}, nil
		},
	}
	service := newTestService(repo, reader)

	// Flight A holds the two lowest handicaps, m1 and m3.
	ranked, err := service.FlightLeaderboard(context.Background(), uuid.New(), "flight-0")

	require.NoError(t, err)
	require.Len(t, ranked, 2, "scores outside the flight are filtered out")
	assert.Equal(t, "m3", ranked[0].MemberID)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, "m1", ranked[1].MemberID)
	assert.Equal(t, 2, ranked[1].Position)
}

func TestFlightLeaderboardUnknownFlight(t *testing.T) {
	division := flights.Create(flightField(), flights.Config{NumberOfFlights: 2})
	stored, err := json.Marshal(storedFlights{Flights: division})
	require.NoError(t, err)

	repo := &FakeCompetitionRepository{
		GetRoundResultFn: func(context.Context, bun.IDB, uuid.UUID, string) (json.RawMessage, error) {
			return stored, nil
		},
	}
	reader := &FakeScorecardReader{
		GetRoundScorecardsFn: func(context.Context, bun.IDB, uuid.UUID) ([]scoringdomain.Scorecard, error) {
			return []scoringdomain.Scorecard{skinsCard("m1", "Alice", 4)}, nil
		},
	}
	service := newTestService(repo, reader)

	ranked, err := service.FlightLeaderboard(context.Background(), uuid.New(), "flight-9")

	require.NoError(t, err)
	assert.Empty(t, ranked)
}
