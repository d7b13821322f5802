package competitionservice

import (
	"context"

	"github.com/google/uuid"

	competitionevents "github.com/fairway-collective/tripcaddy/app/modules/competition/events"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/ctp"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/flights"
)

// Service defines the interface for the CompetitionService.
type Service interface {
	ComputeRoundSkins(ctx context.Context, payload SkinsComputeRequest) (SkinsOperationResult, error)
	GetRoundSkins(ctx context.Context, roundID uuid.UUID) (*competitionevents.SkinsComputedPayloadV1, error)

	CreateRoundFlights(ctx context.Context, roundID uuid.UUID, members []flights.Member, cfg flights.Config) ([]flights.Flight, error)
	GetRoundFlights(ctx context.Context, roundID uuid.UUID) ([]flights.Flight, error)
	FlightLeaderboard(ctx context.Context, roundID uuid.UUID, flightID string) ([]flights.RankedScore, error)

	RecordCTPMeasurement(ctx context.Context, roundID uuid.UUID, m ctp.Measurement, cfg ctp.Config) error
	GetRoundCTP(ctx context.Context, roundID uuid.UUID, cfg ctp.Config) (*CTPStandings, error)
}
