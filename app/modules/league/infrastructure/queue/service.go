// Package leaguequeue schedules deferred league work on River: standings
// recomputes that should happen later rather than inline.
package leaguequeue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	leagueservice "github.com/fairway-collective/tripcaddy/app/modules/league/application"
	leagueevents "github.com/fairway-collective/tripcaddy/app/modules/league/events"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/handlerwrapper"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

// QueueService is the contract for deferred league work.
type QueueService interface {
	// ScheduleStandingsRecompute schedules a season recompute at the given
	// time. Duplicate schedules for the same season collapse into one job.
	ScheduleStandingsRecompute(ctx context.Context, seasonID uuid.UUID, at time.Time) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service handles job scheduling for the league module using River.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// StandingsRecomputeWorker runs scheduled recomputes and publishes the
// resulting standings update.
type StandingsRecomputeWorker struct {
	river.WorkerDefaults[StandingsRecomputeJob]

	service  leagueservice.Service
	eventBus eventbus.EventBus
	logger   *slog.Logger
}

func (w *StandingsRecomputeWorker) Work(ctx context.Context, job *river.Job[StandingsRecomputeJob]) error {
	seasonID := job.Args.SeasonID
	w.logger.InfoContext(ctx, "Running scheduled standings recompute",
		attr.String("season_id", seasonID.String()),
	)

	result, err := w.service.RecomputeStandings(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("scheduled recompute for season %s: %w", seasonID, err)
	}
	if result.IsFailure() {
		// A missing season is permanent; retrying won't help.
		w.logger.WarnContext(ctx, "Scheduled recompute returned failure",
			attr.String("season_id", seasonID.String()),
			attr.String("reason", result.Failure.Reason),
		)
		return nil
	}

	msg, err := handlerwrapper.ToMessage(handlerwrapper.Result{
		Topic:   leagueevents.StandingsUpdatedV1,
		Payload: result.Success,
	})
	if err != nil {
		return fmt.Errorf("failed to build standings update message: %w", err)
	}
	if err := w.eventBus.Publish(leagueevents.StandingsUpdatedV1, msg); err != nil {
		return fmt.Errorf("failed to publish standings update: %w", err)
	}
	return nil
}

// NewService creates a new River-based queue service for league scheduling.
// River requires pgx, so the service owns its own pool next to the bun DB.
func NewService(
	ctx context.Context,
	logger *slog.Logger,
	dsn string,
	service leagueservice.Service,
	eventBus eventbus.EventBus,
) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	ctxLogger.Info("Initializing league queue service")

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, &StandingsRecomputeWorker{
		service:  service,
		eventBus: eventBus,
		logger:   ctxLogger,
	})

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			"league":           {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	ctxLogger.Info("League queue service initialized successfully")
	return &Service{
		client: riverClient,
		pool:   pool,
		logger: ctxLogger,
	}, nil
}

// Start starts the River queue service.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting league queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

// Stop stops the River queue service and releases its pool.
func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info("Stopping league queue service")
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}

// ScheduleStandingsRecompute schedules a season recompute.
func (s *Service) ScheduleStandingsRecompute(ctx context.Context, seasonID uuid.UUID, at time.Time) error {
	job := StandingsRecomputeJob{SeasonID: seasonID}

	result, err := s.client.Insert(ctx, job, &river.InsertOpts{
		Queue:       "league",
		ScheduledAt: at,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to schedule standings recompute for season %s: %w", seasonID, err)
	}

	s.logger.InfoContext(ctx, "Standings recompute scheduled",
		attr.String("season_id", seasonID.String()),
		attr.String("scheduled_at", at.Format(time.RFC3339)),
		attr.Int("job_id", int(result.Job.ID)),
	)
	return nil
}
