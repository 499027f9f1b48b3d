// Package bus implements the message bus publishers.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/bus"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
)

const (
	kindAMQP      = config.BusKindAMQP
	kindJetStream = config.BusKindJetStream

	headerRequestID = "requestId"
)

// New creates the publisher selected by cfg.Kind.
func New(ctx context.Context, cfg config.BusConfig, log *logger.Logger) (bus.Publisher, error) {
	if log == nil {
		log = logger.GetDefaultLogger()
	}
	log = log.WithComponent(common.ComponentPublisher)

	switch cfg.Kind {
	case config.BusKindAMQP:
		if cfg.AMQP == nil {
			return nil, fmt.Errorf("amqp section is required for kind %q", cfg.Kind)
		}
		return NewAMQPPublisher(*cfg.AMQP, cfg.Retry, cfg.CircuitBreaker, log)
	case config.BusKindJetStream:
		if cfg.JetStream == nil {
			return nil, fmt.Errorf("jetstream section is required for kind %q", cfg.Kind)
		}
		return NewJetStreamPublisher(ctx, *cfg.JetStream, cfg.Retry, cfg.CircuitBreaker, log)
	default:
		return nil, fmt.Errorf("unknown bus kind %q", cfg.Kind)
	}
}

func encode(msg bus.Message) ([]byte, error) {
	if msg.RoutingKey == "" {
		return nil, fmt.Errorf("message %s has no routing key", msg.MessageID)
	}

	body, err := json.Marshal(msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload of message %s: %w", msg.MessageID, err)
	}

	return body, nil
}

func breakerFromConfig(kind string, cfg *config.CircuitBreakerConfig) *circuitBreaker {
	if cfg == nil {
		cfg = &config.CircuitBreakerConfig{}
		cfg.ApplyDefaults()
	}

	return newCircuitBreaker(kind, cfg.Threshold, cfg.Timeout.Duration)
}

// guardedPublish runs one publication through the breaker and the retry policy.
func guardedPublish(
	ctx context.Context,
	kind string,
	breaker *circuitBreaker,
	retry *config.RetryConfig,
	log *logger.Logger,
	msg bus.Message,
	fn func(ctx context.Context) error,
) error {
	if !breaker.Allow() {
		PublishFailureInc(kind)
		return ErrCircuitOpen
	}

	start := time.Now()
	err := retryWithBackoff(ctx, retry, kind+"_publish", func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil {
			log.Warnw("publish attempt failed",
				"routingKey", msg.RoutingKey,
				"messageId", msg.MessageID,
				"error", err)
		}
		return err
	})
	PublishDurationLog(kind, time.Since(start).Seconds())

	if err != nil {
		breaker.RecordFailure()
		PublishFailureInc(kind)
		return fmt.Errorf("publish %s: %w", msg.RoutingKey, err)
	}

	breaker.RecordSuccess()
	PublishedInc(kind)

	return nil
}
