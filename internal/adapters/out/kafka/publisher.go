// Package kafka publishes committed domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"marketplace/internal/core/ports"

	"github.com/IBM/sarama"
)

const sendTimeout = 5 * time.Second

// Publisher writes every event as a JSON envelope keyed by its aggregate id, so
// all events of one order land on one partition in commit order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewConfig returns the producer configuration used in production.
func NewConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.Return.Successes = true
	config.Producer.Timeout = sendTimeout
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	return config
}

// Dial connects a synchronous producer to the brokers.
func Dial(brokers []string, topic, clientID string, logger *slog.Logger) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("connect to kafka: %w", err)
	}
	return NewPublisher(producer, topic, logger), nil
}

func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher", "topic", topic),
	}
}

// Publish sends events one by one and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...ports.Event) error {
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := p.message(e)
		if err != nil {
			return err
		}

		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return fmt.Errorf("send %s for %s: %w", e.Type, e.AggregateID, err)
		}
		p.logger.DebugContext(ctx, "Event published",
			"type", e.Type, "aggregate", e.AggregateID.String(), "partition", partition, "offset", offset)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

func (p *Publisher) message(e ports.Event) (*sarama.ProducerMessage, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", e.Type, err)
	}

	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.AggregateID.String()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(e.Type)},
			{Key: []byte("event-version"), Value: []byte(strconv.Itoa(e.Version))},
		},
		Timestamp: e.OccurredAt,
	}, nil
}

// LogPublisher stands in for Kafka when no brokers are configured: events are
// written to the log and dropped.
type LogPublisher struct {
	logger *slog.Logger
}

var _ ports.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...ports.Event) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "Event", "type", e.Type, "aggregate", e.AggregateID.String())
	}
	return nil
}
