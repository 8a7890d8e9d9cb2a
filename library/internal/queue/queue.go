package queue

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	cb "github.com/Randazzz/LibraryAPI/pkg/circuit_breaker"
)

// Enqueuer publishes loan events to kafka. Sends go through a circuit breaker so a
// dead broker costs one fast error per request instead of a producer timeout.
type Enqueuer struct {
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
	topic    string
	log      *zap.Logger
}

func NewEnqueuer(producer sarama.SyncProducer, breaker cb.CircuitBreaker, topic string, log *zap.Logger) *Enqueuer {
	return &Enqueuer{
		producer: producer,
		breaker:  breaker,
		topic:    topic,
		log:      log.Named("queue"),
	}
}

func (q *Enqueuer) Enqueue(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: q.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return q.breaker.Call(func() error {
		partition, offset, err := q.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "SendMessage")
		}
		q.log.Debug("enqueued",
			zap.String("topic", q.topic),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

// PublishLoanEvent keys events by book so transitions of one book stay ordered.
func (q *Enqueuer) PublishLoanEvent(_ context.Context, event model.LoanEvent) error {
	return q.Enqueue(strconv.Itoa(event.BookID), event)
}

// BreakerListener logs transitions of the producer circuit breaker.
func BreakerListener(log *zap.Logger) cb.StateListener {
	log = log.Named("queue")
	return func(from, to cb.Status) {
		log.Warn("producer circuit breaker",
			zap.Stringer("from", from),
			zap.Stringer("to", to))
	}
}

func (q *Enqueuer) Close() error {
	return q.producer.Close()
}
