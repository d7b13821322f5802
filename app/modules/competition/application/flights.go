package competitionservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/flights"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// storedFlights is the jsonb shape persisted under KindFlights.
type storedFlights struct {
	Config  flights.Config   `json:"config"`
	Flights []flights.Flight `json:"flights"`
}

// CreateRoundFlights divides a field into flights and stores the division for
// the round. An empty member list derives the field from the round's
// persisted scorecards, flighting by playing handicap. Recreating replaces
// the previous division.
func (s *CompetitionService) CreateRoundFlights(ctx context.Context, roundID uuid.UUID, members []flights.Member, cfg flights.Config) ([]flights.Flight, error) {
	if len(members) == 0 {
		cards, err := s.scorecards.GetRoundScorecards(ctx, nil, roundID)
		if err != nil {
			return nil, fmt.Errorf("failed to load scorecards for round %s: %w", roundID, err)
		}
		members = membersFromScorecards(cards)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("no members to flight")
	}

	created := flights.Create(members, cfg)

	stored, err := json.Marshal(storedFlights{Config: cfg, Flights: created})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flights: %w", err)
	}
	if err := s.repo.UpsertRoundResult(ctx, nil, roundID, competitiondb.KindFlights, stored); err != nil {
		return nil, err
	}

	return created, nil
}

// GetRoundFlights returns a round's stored flight division.
func (s *CompetitionService) GetRoundFlights(ctx context.Context, roundID uuid.UUID) ([]flights.Flight, error) {
	raw, err := s.repo.GetRoundResult(ctx, nil, roundID, competitiondb.KindFlights)
	if err != nil {
		return nil, err
	}

	var stored storedFlights
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode stored flights: %w", err)
	}
	return stored.Flights, nil
}

// FlightLeaderboard ranks one flight of a round using its persisted
// scorecards.
func (s *CompetitionService) FlightLeaderboard(ctx context.Context, roundID uuid.UUID, flightID string) ([]flights.RankedScore, error) {
	allFlights, err := s.GetRoundFlights(ctx, roundID)
	if err != nil {
		return nil, err
	}

	cards, err := s.scorecards.GetRoundScorecards(ctx, nil, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scorecards for round %s: %w", roundID, err)
	}
	if len(cards) == 0 {
		return []flights.RankedScore{}, nil
	}

	handicaps := flightHandicaps(allFlights)

	scores := make([]flights.Score, 0, len(cards))
	for _, card := range cards {
		if !card.Complete() {
			continue
		}
		scores = append(scores, flights.Score{
			MemberID:         card.MemberID,
			Name:             card.DisplayName,
			Handicap:         handicaps[card.MemberID],
			GrossTotal:       derefInt(card.GrossTotal),
			NetTotal:         derefInt(card.NetTotal),
			StablefordPoints: card.TotalPoints,
		})
	}

	return flights.Leaderboard(flightID, allFlights, scores, cards[0].Format), nil
}

func flightHandicaps(allFlights []flights.Flight) map[string]float64 {
	handicaps := make(map[string]float64)
	for _, f := range allFlights {
		for _, m := range f.Members {
			handicaps[m.MemberID] = m.Handicap
		}
	}
	return handicaps
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// membersFromScorecards builds a flightable field from persisted cards,
// using playing handicaps when no roster handicap is supplied.
func membersFromScorecards(cards []scoringdomain.Scorecard) []flights.Member {
	members := make([]flights.Member, 0, len(cards))
	for _, card := range cards {
		members = append(members, flights.Member{
			MemberID: card.MemberID,
			Name:     card.DisplayName,
			Handicap: float64(card.PlayingHandicap),
		})
	}
	return members
}
