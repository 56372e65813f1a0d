// Package kafka publishes reservation lifecycle events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// NewProducer creates a synchronous producer that waits for all in-sync
// replicas to acknowledge each message.
func NewProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Return.Successes = true
	sc.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.BrokerList(), sc)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// Publisher writes reservation events as JSON, keyed by book id so that the
// events of one book keep their order within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a Publisher writing to topic.
func NewPublisher(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Publish sends one event and waits for the broker acknowledgement.
func (p *Publisher) Publish(ctx context.Context, event domain.ReservationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookID.String()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send %s: %w", event.Type, err)
	}
	return nil
}

// Close flushes and closes the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Noop discards events. It is used when no brokers are configured.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(context.Context, domain.ReservationEvent) error { return nil }

// Close does nothing.
func (Noop) Close() error { return nil }
