// Package competition assembles the competition module: repository, service,
// and message router.
package competition

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	competitionservice "github.com/fairway-collective/tripcaddy/app/modules/competition/application"
	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	competitionrouter "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/router"
	scoringdb "github.com/fairway-collective/tripcaddy/app/modules/scoring/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// Module represents the competition module.
type Module struct {
	EventBus           eventbus.EventBus
	CompetitionService competitionservice.Service
	CompetitionRouter  *competitionrouter.CompetitionRouter
	obs                *observability.Observability
	cancelFunc         context.CancelFunc
}

// NewCompetitionModule wires the competition module together and registers
// its handlers on the shared router. It reads scorecards through the scoring
// repository but never writes them.
func NewCompetitionModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	obs.Logger.Info("competition.NewCompetitionModule called")

	opMetrics := observability.NewOperationMetrics(obs.Registry, "competition")

	repo := &competitiondb.CompetitionDBImpl{DB: db}
	scorecards := &scoringdb.ScorecardDBImpl{DB: db}
	service := competitionservice.NewCompetitionService(repo, scorecards, eventBus, obs.Logger, opMetrics, obs.Tracer, db)

	moduleRouter := competitionrouter.NewCompetitionRouter(obs.Logger, router, eventBus, eventBus, obs.Registry)
	if err := moduleRouter.Configure(ctx, service, opMetrics, obs.Tracer); err != nil {
		return nil, fmt.Errorf("failed to configure competition router: %w", err)
	}

	return &Module{
		EventBus:           eventBus,
		CompetitionService: service,
		CompetitionRouter:  moduleRouter,
		obs:                obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.obs.Logger.Info("Starting competition module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.obs.Logger.Info("Competition module goroutine stopped")
}

func (m *Module) Close() error {
	m.obs.Logger.Info("Stopping competition module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	m.obs.Logger.Info("Competition module stopped")
	return nil
}
