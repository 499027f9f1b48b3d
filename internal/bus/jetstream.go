package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/bus"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamSetupTimeout = 10 * time.Second
	drainTimeout       = 5 * time.Second
)

// Compile-time check to ensure JetStreamPublisher implements bus.Publisher interface.
var _ bus.Publisher = (*JetStreamPublisher)(nil)

// JetStreamPublisher publishes to <stream>.<routing key>. The message id is
// sent as Nats-Msg-Id so the stream drops duplicates within the dedup window.
type JetStreamPublisher struct {
	js        jetstream.JetStream
	conn      *nats.Conn
	stream    string
	retry     *config.RetryConfig
	breaker   *circuitBreaker
	log       *logger.Logger
	drainDone chan struct{}
}

// NewJetStreamPublisher connects to NATS and creates or updates the stream.
func NewJetStreamPublisher(
	ctx context.Context,
	cfg config.JetStreamConfig,
	retry *config.RetryConfig,
	breaker *config.CircuitBreakerConfig,
	log *logger.Logger,
) (*JetStreamPublisher, error) {
	drainDone := make(chan struct{})

	conn, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second), //nolint:mnd
		nats.DrainTimeout(drainTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warnw("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infow("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			close(drainDone)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, streamSetupTimeout)
	defer cancel()

	_, err = js.CreateOrUpdateStream(setupCtx, jetstream.StreamConfig{
		Name:       cfg.Stream,
		Subjects:   []string{cfg.Stream + ".>"},
		MaxAge:     cfg.PersistDuration.Duration,
		Storage:    jetstream.FileStorage,
		Duplicates: cfg.DedupWindow.Duration,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create or update stream %s: %w", cfg.Stream, err)
	}

	log.Infow("connected to nats jetstream", "stream", cfg.Stream, "servers", conn.Servers())

	return &JetStreamPublisher{
		js:        js,
		conn:      conn,
		stream:    cfg.Stream,
		retry:     retry,
		breaker:   breakerFromConfig(kindJetStream, breaker),
		log:       log,
		drainDone: drainDone,
	}, nil
}

func (p *JetStreamPublisher) subject(routingKey string) string {
	return p.stream + "." + routingKey
}

func (p *JetStreamPublisher) Publish(ctx context.Context, msg bus.Message) error {
	body, err := encode(msg)
	if err != nil {
		return err
	}

	natsMsg := nats.NewMsg(p.subject(msg.RoutingKey))
	natsMsg.Data = body
	natsMsg.Header.Set(headerRequestID, msg.RequestID)

	var opts []jetstream.PublishOpt
	if msg.MessageID != "" {
		opts = append(opts, jetstream.WithMsgID(msg.MessageID))
	}

	return guardedPublish(ctx, kindJetStream, p.breaker, p.retry, p.log, msg, func(ctx context.Context) error {
		ack, err := p.js.PublishMsg(ctx, natsMsg, opts...)
		if err != nil {
			return err
		}
		if ack.Duplicate {
			p.log.Debugw("duplicate message dropped by stream", "messageId", msg.MessageID, "seq", ack.Sequence)
		}
		return nil
	})
}

func (p *JetStreamPublisher) Ping(ctx context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats connection status %s", p.conn.Status())
	}
	if p.breaker.State() == stateOpen {
		return ErrCircuitOpen
	}

	_, err := p.js.Stream(ctx, p.stream)
	return err
}

func (p *JetStreamPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		if errors.Is(err, nats.ErrConnectionClosed) {
			return nil
		}
		return err
	}

	select {
	case <-p.drainDone:
	case <-time.After(drainTimeout + time.Second):
		p.log.Warn("nats drain timeout exceeded, closing")
		p.conn.Close()
	}

	return nil
}
