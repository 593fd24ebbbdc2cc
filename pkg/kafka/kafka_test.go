package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/kimnamhyeong01/bookstore-service/pkg/breaker"
	"github.com/kimnamhyeong01/bookstore-service/pkg/kafka"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type event struct {
	Type string `json:"type"`
	ISBN string `json:"isbn"`
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.Equal(t, "bookstore.events", msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, "kim@mail.com", string(key))
		value, err := msg.Value.Encode()
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"purchase.completed","isbn":"9780134685991"}`, string(value))
		return nil
	})

	p := kafka.NewPublisher(producer, kafka.Config{}, zap.NewExample())
	err := p.Publish(context.Background(), "kim@mail.com", event{Type: "purchase.completed", ISBN: "9780134685991"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	cfg := kafka.Config{
		Topic:   "audit",
		Breaker: breaker.Config{Window: 1, FailureRatio: 1, Cooldown: time.Hour, Recovery: 1},
	}
	p := kafka.NewPublisher(producer, cfg, zap.NewExample())

	err := p.Publish(context.Background(), "k", event{Type: "x"})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	// no further expectation: the breaker must not reach the producer
	err = p.Publish(context.Background(), "k", event{Type: "x"})
	require.ErrorIs(t, err, breaker.ErrOpen)
	require.NoError(t, p.Close())
}
