// Package leaguerouter wires the league module's handlers into a watermill
// router.
package leaguerouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	leagueservice "github.com/fairway-collective/tripcaddy/app/modules/league/application"
	leaguehandlers "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/handlers"
	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
	"github.com/fairway-collective/tripcaddy/internal/eventbus"
	"github.com/fairway-collective/tripcaddy/internal/handlerwrapper"
	"github.com/fairway-collective/tripcaddy/internal/observability"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

type LeagueRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      eventbus.EventBus
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

func NewLeagueRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	prometheusRegistry *prometheus.Registry,
) *LeagueRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &LeagueRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		metricsBuilder: metricsBuilder,
		metricsEnabled: prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure registers the league handlers and router middleware.
func (r *LeagueRouter) Configure(
	routerCtx context.Context,
	service leagueservice.Service,
	opMetrics observability.OperationMetrics,
	tracer trace.Tracer,
) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	} else {
		r.logger.Info("Skipping Prometheus router metrics middleware - either in test environment or metrics not configured")
	}

	handlers := leaguehandlers.NewLeagueHandlers(service, r.logger, opMetrics, tracer)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	if err := r.RegisterHandlers(routerCtx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers subscribes each handler to its topic and publishes
// whatever the handler returns, resolving the topic from message metadata.
func (r *LeagueRouter) RegisterHandlers(ctx context.Context, handlers leaguehandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		scoringevents.RoundScorecardsProcessedV1: handlers.HandleScorecardsProcessed(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("league.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.subscriber.Subscriber(),
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message",
						attr.String("message_id", msg.UUID),
						attr.Error(err),
					)
					return nil, err
				}
				for _, m := range messages {
					publishTopic := m.Metadata.Get(handlerwrapper.TopicMetadataKey)
					if publishTopic == "" {
						r.logger.Error("router failed to resolve publish topic - MESSAGE DROPPED",
							attr.String("handler", handlerName),
							attr.String("msg_uuid", m.UUID),
							attr.CorrelationIDFromMsg(m),
						)
						continue
					}

					if err := r.publisher.Publish(publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

func (r *LeagueRouter) Close() error {
	return r.Router.Close()
}
