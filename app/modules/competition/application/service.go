// Package competitionservice computes and persists the side-game results of a
// round: skins, flights, and closest-to-pin.
package competitionservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/observability"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
	"github.com/fairway-collective/tripcaddy/internal/results"
)

// ScorecardReader is the slice of the scoring repository the competition
// module reads through. The side games never write scorecards.
type ScorecardReader interface {
	GetRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error)
}

// CompetitionService implements the Service interface.
type CompetitionService struct {
	repo       competitiondb.Repository
	scorecards ScorecardReader
	EventBus   eventbus.EventBus
	logger     *slog.Logger
	metrics    observability.OperationMetrics
	tracer     trace.Tracer
	db         *bun.DB
}

// NewCompetitionService creates a new CompetitionService.
func NewCompetitionService(
	repo competitiondb.Repository,
	scorecards ScorecardReader,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CompetitionService {
	return &CompetitionService{
		repo:       repo,
		scorecards: scorecards,
		EventBus:   eventBus,
		logger:     logger,
		metrics:    metrics,
		tracer:     tracer,
		db:         db,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *CompetitionService,
	ctx context.Context,
	operationName string,
	roundID uuid.UUID,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.String("round_id", roundID.String()),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("round_id", roundID.String()),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}
	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("round_id", roundID.String()),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[S any, F any](
	s *CompetitionService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}
