// Package scoring assembles the scoring module: repository, service, and
// message router.
package scoring

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	scoringservice "github.com/fairway-collective/tripcaddy/app/modules/scoring/application"
	scoringdb "github.com/fairway-collective/tripcaddy/app/modules/scoring/infrastructure/repositories"
	scoringrouter "github.com/fairway-collective/tripcaddy/app/modules/scoring/infrastructure/router"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// Module represents the scoring module.
type Module struct {
	EventBus       eventbus.EventBus
	ScoringService scoringservice.Service
	ScoringRouter  *scoringrouter.ScoringRouter
	obs            *observability.Observability
	cancelFunc     context.CancelFunc
}

// NewScoringModule wires the scoring module together and registers its
// handlers on the shared router.
func NewScoringModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	obs.Logger.Info("scoring.NewScoringModule called")

	opMetrics := observability.NewOperationMetrics(obs.Registry, "scoring")

	repo := &scoringdb.ScorecardDBImpl{DB: db}
	service := scoringservice.NewScoringService(repo, eventBus, obs.Logger, opMetrics, obs.Tracer, db)

	moduleRouter := scoringrouter.NewScoringRouter(obs.Logger, router, eventBus, eventBus, obs.Registry)
	if err := moduleRouter.Configure(ctx, service, opMetrics, obs.Tracer); err != nil {
		return nil, fmt.Errorf("failed to configure scoring router: %w", err)
	}

	return &Module{
		EventBus:       eventBus,
		ScoringService: service,
		ScoringRouter:  moduleRouter,
		obs:            obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.obs.Logger.Info("Starting scoring module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.obs.Logger.Info("Scoring module goroutine stopped")
}

func (m *Module) Close() error {
	m.obs.Logger.Info("Stopping scoring module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	m.obs.Logger.Info("Scoring module stopped")
	return nil
}
