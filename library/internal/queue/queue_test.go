package queue_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/library/internal/queue"
	cb "github.com/Randazzz/LibraryAPI/pkg/circuit_breaker"
	"github.com/Randazzz/LibraryAPI/pkg/kafka"
)

func newBreaker(opts ...cb.Option) cb.CircuitBreaker {
	return cb.New(cb.Config{RecordLength: 2, Timeout: time.Hour, Percentile: 1, RecoveryRequests: 1}, opts...)
}

func TestEnqueuer_PublishLoanEvent(t *testing.T) {
	t.Parallel()
	event := model.LoanEvent{
		Type:   model.LoanEventLent,
		LoanID: 7,
		BookID: 3,
		UserID: uuid.MustParse("5b3f3f8e-9a0c-4bd4-8f3b-5a2e7e0f1c11"),
		At:     time.Date(2025, time.February, 17, 13, 12, 0, 0, time.UTC),
	}

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.Equal(t, kafka.LoansTopic, msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, "3", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var got model.LoanEvent
		require.NoError(t, json.Unmarshal(value, &got))
		require.Equal(t, event, got)
		return nil
	})

	q := queue.NewEnqueuer(producer, newBreaker(), kafka.LoansTopic, zap.NewNop())
	require.NoError(t, q.PublishLoanEvent(context.Background(), event))
	require.NoError(t, q.Close())
}

func TestEnqueuer_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	core, logs := observer.New(zap.WarnLevel)
	breaker := newBreaker(cb.WithStateListener(queue.BreakerListener(zap.New(core))))
	q := queue.NewEnqueuer(producer, breaker, kafka.LoansTopic, zap.NewNop())
	event := model.LoanEvent{Type: model.LoanEventReturned, LoanID: 1, BookID: 1}

	require.ErrorIs(t, q.PublishLoanEvent(context.Background(), event), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, q.PublishLoanEvent(context.Background(), event), sarama.ErrOutOfBrokers)
	// the third call never reaches the producer
	require.ErrorIs(t, q.PublishLoanEvent(context.Background(), event), cb.ErrOpenCB)
	require.NoError(t, q.Close())

	entries := logs.FilterMessage("producer circuit breaker").All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]any{"from": "closed", "to": "open"}, entries[0].ContextMap())
}
