// Package league assembles the league module: repository, service, queue,
// and message router.
package league

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	leagueservice "github.com/fairway-collective/tripcaddy/app/modules/league/application"
	leaguequeue "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/queue"
	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	leaguerouter "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/router"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// Module represents the league module.
type Module struct {
	EventBus      eventbus.EventBus
	LeagueService leagueservice.Service
	LeagueRouter  *leaguerouter.LeagueRouter
	Queue         leaguequeue.QueueService
	obs           *observability.Observability
	cancelFunc    context.CancelFunc
}

// NewLeagueModule wires the league module together: service, River queue,
// and router handlers.
func NewLeagueModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	dsn string,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	obs.Logger.Info("league.NewLeagueModule called")

	opMetrics := observability.NewOperationMetrics(obs.Registry, "league")

	repo := &leaguedb.LeagueDBImpl{DB: db}
	service := leagueservice.NewLeagueService(repo, eventBus, obs.Logger, opMetrics, obs.Tracer, db)

	queue, err := leaguequeue.NewService(ctx, obs.Logger, dsn, service, eventBus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize league queue: %w", err)
	}

	moduleRouter := leaguerouter.NewLeagueRouter(obs.Logger, router, eventBus, eventBus, obs.Registry)
	if err := moduleRouter.Configure(ctx, service, opMetrics, obs.Tracer); err != nil {
		return nil, fmt.Errorf("failed to configure league router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		LeagueService: service,
		LeagueRouter:  moduleRouter,
		Queue:         queue,
		obs:           obs,
	}, nil
}

// Run starts the queue and keeps the module alive until the context is
// canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.obs.Logger.Info("Starting league module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.Queue.Start(ctx); err != nil {
		m.obs.Logger.Error("Failed to start league queue: " + err.Error())
	}

	<-ctx.Done()
	m.obs.Logger.Info("League module goroutine stopped")
}

func (m *Module) Close() error {
	m.obs.Logger.Info("Stopping league module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if err := m.Queue.Stop(context.Background()); err != nil {
		m.obs.Logger.Error("Failed to stop league queue: " + err.Error())
	}

	m.obs.Logger.Info("League module stopped")
	return nil
}
