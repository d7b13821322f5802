// Package app assembles the application: database, event bus, modules, and
// the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/fairway-collective/tripcaddy/api"
	"github.com/fairway-collective/tripcaddy/app/modules/competition"
	"github.com/fairway-collective/tripcaddy/app/modules/league"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring"
	"github.com/fairway-collective/tripcaddy/config"
	"github.com/fairway-collective/tripcaddy/db/bundb"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/observability"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

// App holds the application's wired components.
type App struct {
	Config        *config.Config
	Observability *observability.Observability

	db       *bundb.DBService
	eventBus eventbus.EventBus
	routers  []*message.Router

	scoringModule     *scoring.Module
	competitionModule *competition.Module
	leagueModule      *league.Module

	httpServer *http.Server
}

// NewApp wires the full application from config.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.Init(cfg.Observability, "tripcaddy")
	logger := obs.Logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	bus, err := eventbus.NewJetStreamEventBus(cfg.NATS.URL, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	// Each module owns its router so middleware stays module-scoped.
	newRouter := func() (*message.Router, error) {
		return message.NewRouter(message.RouterConfig{}, watermillLogger)
	}

	scoringRouter, err := newRouter()
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring router: %w", err)
	}
	competitionRouter, err := newRouter()
	if err != nil {
		return nil, fmt.Errorf("failed to create competition router: %w", err)
	}
	leagueRouter, err := newRouter()
	if err != nil {
		return nil, fmt.Errorf("failed to create league router: %w", err)
	}

	scoringModule, err := scoring.NewScoringModule(ctx, obs, dbService.GetDB(), bus, scoringRouter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scoring module: %w", err)
	}
	competitionModule, err := competition.NewCompetitionModule(ctx, obs, dbService.GetDB(), bus, competitionRouter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize competition module: %w", err)
	}
	leagueModule, err := league.NewLeagueModule(ctx, obs, dbService.GetDB(), cfg.Postgres.DSN, bus, leagueRouter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize league module: %w", err)
	}

	apiServer := api.NewServer(
		logger,
		cfg.HTTP,
		scoringModule.ScoringService,
		competitionModule.CompetitionService,
		leagueModule.LeagueService,
		leagueModule.Queue,
	)

	return &App{
		Config:            cfg,
		Observability:     obs,
		db:                dbService,
		eventBus:          bus,
		routers:           []*message.Router{scoringRouter, competitionRouter, leagueRouter},
		scoringModule:     scoringModule,
		competitionModule: competitionModule,
		leagueModule:      leagueModule,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           apiServer.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run starts the routers, modules, metrics endpoint, and HTTP API, then
// blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	logger := a.Observability.Logger

	for _, r := range a.routers {
		router := r
		go func() {
			if err := router.Run(ctx); err != nil {
				logger.Error("Message router stopped with error", attr.Error(err))
			}
		}()
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go a.scoringModule.Run(ctx, &wg)
	go a.competitionModule.Run(ctx, &wg)
	go a.leagueModule.Run(ctx, &wg)

	go func() {
		if err := a.Observability.ServeMetrics(a.Config.Observability.MetricsAddress); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server stopped with error", attr.Error(err))
		}
	}()

	go func() {
		logger.Info("HTTP API listening", attr.String("address", a.Config.HTTP.Address))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped with error", attr.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")
	wg.Wait()
	return nil
}

// Close shuts everything down in reverse dependency order.
func (a *App) Close() error {
	logger := a.Observability.Logger

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", attr.Error(err))
	}

	if err := a.scoringModule.Close(); err != nil {
		logger.Error("Failed to close scoring module", attr.Error(err))
	}
	if err := a.competitionModule.Close(); err != nil {
		logger.Error("Failed to close competition module", attr.Error(err))
	}
	if err := a.leagueModule.Close(); err != nil {
		logger.Error("Failed to close league module", attr.Error(err))
	}

	for _, r := range a.routers {
		if err := r.Close(); err != nil {
			logger.Error("Failed to close message router", attr.Error(err))
		}
	}

	if err := a.eventBus.Close(); err != nil {
		logger.Error("Failed to close event bus", attr.Error(err))
	}
	if err := a.db.GetDB().Close(); err != nil {
		logger.Error("Failed to close database", attr.Error(err))
	}

	logger.Info("Application stopped")
	return nil
}
