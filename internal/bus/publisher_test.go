package bus

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/bus"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	body, err := encode(bus.Message{
		RoutingKey: "BLK.0x01",
		Payload:    map[string]any{"blockNumber": 7},
		MessageID:  "m1",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"blockNumber":7}`, string(body))

	_, err = encode(bus.Message{MessageID: "m2", Payload: 1})
	require.ErrorContains(t, err, "no routing key")

	_, err = encode(bus.Message{RoutingKey: "BLK.0x01", Payload: make(chan int)})
	require.ErrorContains(t, err, "marshal payload")
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.BusConfig
		wantErr string
	}{
		{name: "amqp without section", cfg: config.BusConfig{Kind: config.BusKindAMQP}, wantErr: "amqp section"},
		{name: "jetstream without section", cfg: config.BusConfig{Kind: config.BusKindJetStream}, wantErr: "jetstream section"},
		{name: "unknown kind", cfg: config.BusConfig{Kind: "kafka"}, wantErr: "unknown bus kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(context.Background(), tt.cfg, logger.NewNopLogger())
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGuardedPublish_OpensBreaker(t *testing.T) {
	ctx := context.Background()
	breaker := newCircuitBreaker("test", 2, time.Hour)
	msg := bus.Message{RoutingKey: "BLK.0x01", MessageID: "m1"}
	down := &mockNetError{msg: "broker down", timeout: true}

	calls := 0
	publish := func(context.Context) error {
		calls++
		return down
	}

	for range 2 {
		err := guardedPublish(ctx, "test", breaker, fastRetry(2), logger.NewNopLogger(), msg, publish)
		require.ErrorIs(t, err, down)
	}
	require.Equal(t, 4, calls)

	err := guardedPublish(ctx, "test", breaker, fastRetry(2), logger.NewNopLogger(), msg, publish)
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.Equal(t, 4, calls, "open breaker must not reach the broker")
}

func TestGuardedPublish_Success(t *testing.T) {
	breaker := newCircuitBreaker("test", 1, time.Hour)
	breaker.RecordFailure()
	breaker.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	err := guardedPublish(context.Background(), "test", breaker, fastRetry(1), logger.NewNopLogger(),
		bus.Message{RoutingKey: "BLK.0x01"}, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.Equal(t, stateClosed, breaker.State())
}

func TestAMQPPublisher_Integration(t *testing.T) {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		t.Skip("AMQP_URL not set")
	}

	exchange := "eventgate-test-" + uuid.NewString()
	publisher, err := NewAMQPPublisher(config.AMQPConfig{URL: url, Exchange: exchange},
		fastRetry(3), nil, logger.NewNopLogger())
	require.NoError(t, err)
	defer publisher.Close()

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)

	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(queue.Name, "BLK.#", exchange, false, nil))

	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	msg := bus.Message{
		RoutingKey: "BLK.0xabc",
		Payload:    map[string]any{"logIndex": 1},
		RequestID:  uuid.NewString(),
		MessageID:  uuid.NewString(),
	}
	require.NoError(t, publisher.Publish(context.Background(), msg))
	require.NoError(t, publisher.Ping(context.Background()))

	select {
	case d := <-deliveries:
		require.Equal(t, msg.MessageID, d.MessageId)
		require.Equal(t, msg.RequestID, d.CorrelationId)
		require.Equal(t, msg.RequestID, d.Headers[headerRequestID])
		require.Equal(t, "BLK.0xabc", d.RoutingKey)
		require.JSONEq(t, `{"logIndex":1}`, string(d.Body))
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}

	require.NoError(t, publisher.Close())
	require.Error(t, publisher.Publish(context.Background(), msg))
}

func TestJetStreamPublisher_Integration(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set")
	}

	ctx := context.Background()
	stream := "EVENTGATE_TEST_" + uuid.NewString()[:8]

	publisher, err := NewJetStreamPublisher(ctx, config.JetStreamConfig{
		URL:             url,
		Stream:          stream,
		DedupWindow:     common.NewDuration(time.Minute),
		PersistDuration: common.NewDuration(time.Hour),
	}, fastRetry(3), nil, logger.NewNopLogger())
	require.NoError(t, err)
	defer publisher.Close()

	msg := bus.Message{
		RoutingKey: "BLK.0xabc",
		Payload:    map[string]any{"logIndex": 1},
		RequestID:  "req-1",
		MessageID:  "msg-1",
	}
	require.NoError(t, publisher.Publish(ctx, msg))
	require.NoError(t, publisher.Publish(ctx, msg), "duplicates are acknowledged")
	require.NoError(t, publisher.Ping(ctx))

	conn, err := nats.Connect(url)
	require.NoError(t, err)
	defer conn.Close()

	js, err := jetstream.New(conn)
	require.NoError(t, err)

	s, err := js.Stream(ctx, stream)
	require.NoError(t, err)
	defer func() { _ = js.DeleteStream(ctx, stream) }()

	info, err := s.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.State.Msgs)

	stored, err := s.GetLastMsgForSubject(ctx, stream+".BLK.0xabc")
	require.NoError(t, err)
	require.Equal(t, "req-1", stored.Header.Get(headerRequestID))
	require.JSONEq(t, `{"logIndex":1}`, string(stored.Data))

	require.NoError(t, publisher.Close())
	require.False(t, errors.Is(publisher.Close(), nats.ErrConnectionClosed))
}
