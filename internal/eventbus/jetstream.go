// Package eventbus provides the NATS JetStream transport used by the module
// message routers.
package eventbus

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

// EventBus is the messaging contract handed to module routers: a publisher
// and subscriber pair backed by the same connection.
type EventBus interface {
	Publisher() message.Publisher
	Subscriber() message.Subscriber
	Publish(topic string, msgs ...*message.Message) error
	Close() error
}

// JetStreamEventBus implements EventBus using NATS JetStream.
type JetStreamEventBus struct {
	logger     watermill.LoggerAdapter
	natsURL    string
	publisher  *nats.Publisher
	subscriber *nats.Subscriber
}

var _ EventBus = (*JetStreamEventBus)(nil)

// NewJetStreamEventBus creates a new JetStreamEventBus.
func NewJetStreamEventBus(natsURL string, logger watermill.LoggerAdapter) (*JetStreamEventBus, error) {
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
		nc.ErrorHandler(func(_ *nc.Conn, s *nc.Subscription, err error) {
			if s != nil {
				logger.Error("Error in subscription", err, watermill.LogFields{
					"subject": s.Subject,
					"queue":   s.Queue,
				})
			} else {
				logger.Error("Error in connection", err, nil)
			}
		}),
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         natsURL,
			NatsOptions: options,
			Marshaler:   &nats.NATSMarshaler{},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: true,
			},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Watermill NATS publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:         natsURL,
			NatsOptions: options,
			Unmarshaler: &nats.NATSMarshaler{},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: true,
				DurablePrefix: "tripcaddy",
			},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Watermill NATS subscriber: %w", err)
	}

	return &JetStreamEventBus{
		logger:     logger,
		natsURL:    natsURL,
		publisher:  publisher,
		subscriber: subscriber,
	}, nil
}

func (b *JetStreamEventBus) Publisher() message.Publisher {
	return b.publisher
}

func (b *JetStreamEventBus) Subscriber() message.Subscriber {
	return b.subscriber
}

// Publish publishes messages to the given topic.
func (b *JetStreamEventBus) Publish(topic string, msgs ...*message.Message) error {
	if err := b.publisher.Publish(topic, msgs...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Close shuts down the publisher and subscriber connections.
func (b *JetStreamEventBus) Close() error {
	if err := b.publisher.Close(); err != nil {
		b.logger.Error("Failed to close publisher", err, nil)
	}
	return b.subscriber.Close()
}
