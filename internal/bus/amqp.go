package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/bus"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/streadway/amqp"
)

// Compile-time check to ensure AMQPPublisher implements bus.Publisher interface.
var _ bus.Publisher = (*AMQPPublisher)(nil)

// AMQPPublisher publishes persistent messages to a durable topic exchange
// with publisher confirms. A broken connection is re-dialled on the next attempt.
type AMQPPublisher struct {
	url      string
	exchange string
	retry    *config.RetryConfig
	breaker  *circuitBreaker
	log      *logger.Logger

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms chan amqp.Confirmation
	closes   chan *amqp.Error
	closed   bool
}

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(
	cfg config.AMQPConfig,
	retry *config.RetryConfig,
	breaker *config.CircuitBreakerConfig,
	log *logger.Logger,
) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
		retry:    retry,
		breaker:  breakerFromConfig(kindAMQP, breaker),
		log:      log,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return nil, err
	}

	log.Infof("connected to amqp broker, publishing to exchange %s", p.exchange)

	return p, nil
}

// connect must be called with mu held.
func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return fmt.Errorf("enable publisher confirms: %w", err)
	}

	p.conn = conn
	p.ch = ch
	p.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	p.closes = conn.NotifyClose(make(chan *amqp.Error, 1))

	return nil
}

// healthy must be called with mu held.
func (p *AMQPPublisher) healthy() bool {
	if p.conn == nil {
		return false
	}

	select {
	case err := <-p.closes:
		p.log.Warnw("amqp connection closed", "error", err)
		p.reset()
		return false
	default:
		return true
	}
}

// reset must be called with mu held.
func (p *AMQPPublisher) reset() {
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn = nil
	p.ch = nil
	p.confirms = nil
	p.closes = nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg bus.Message) error {
	body, err := encode(msg)
	if err != nil {
		return err
	}

	publishing := amqp.Publishing{
		Headers:       amqp.Table{headerRequestID: msg.RequestID},
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     msg.MessageID,
		CorrelationId: msg.RequestID,
		Timestamp:     time.Now().UTC(),
		Body:          body,
	}

	return guardedPublish(ctx, kindAMQP, p.breaker, p.retry, p.log, msg, func(ctx context.Context) error {
		return p.publishOnce(ctx, msg.RoutingKey, publishing)
	})
}

func (p *AMQPPublisher) publishOnce(ctx context.Context, routingKey string, publishing amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errPublisherClosed
	}

	if !p.healthy() {
		if err := p.connect(); err != nil {
			return err
		}
		p.log.Info("reconnected to amqp broker")
	}

	if err := p.ch.Publish(p.exchange, routingKey, false, false, publishing); err != nil {
		p.reset()
		return err
	}

	select {
	case confirm, ok := <-p.confirms:
		if !ok {
			p.reset()
			return amqp.ErrClosed
		}
		if !confirm.Ack {
			return errNack
		}
		return nil
	case <-ctx.Done():
		// the pending confirm would be attributed to the next publication
		p.reset()
		return ctx.Err()
	}
}

func (p *AMQPPublisher) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errPublisherClosed
	}
	if p.healthy() {
		return nil
	}

	if err := p.connect(); err != nil {
		return err
	}

	return ctx.Err()
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.conn == nil {
		return nil
	}

	err := p.conn.Close()
	p.conn = nil
	p.ch = nil

	if err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	return nil
}
