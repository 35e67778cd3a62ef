package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func event(eventType string) ports.Event {
	return ports.Event{
		Version:     ports.EventVersion,
		Type:        eventType,
		OccurredAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		AggregateID: kernel.NewUUID(),
		Payload:     ports.OrderEventPayload{Status: "pending"},
	}
}

func TestPublisher_Publish_SendsKeyedEnvelopes(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewConfig("test"))
	created := event("order.created")
	bundle := event(ports.EventBundleCreated)

	for _, want := range []ports.Event{created, bundle} {
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != "marketplace.events" {
				return errors.New("wrong topic " + msg.Topic)
			}
			key, err := msg.Key.Encode()
			if err != nil {
				return err
			}
			if string(key) != want.AggregateID.String() {
				return errors.New("wrong key " + string(key))
			}
			return nil
		})
	}

	publisher := kafka.NewPublisher(producer, "marketplace.events", discard())
	require.NoError(t, publisher.Publish(context.Background(), created, bundle))
	require.NoError(t, publisher.Close())
}

func TestPublisher_Publish_EncodesJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	e := event("order.status_changed")

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var decoded struct {
			Version     int    `json:"version"`
			Type        string `json:"type"`
			AggregateID string `json:"aggregateId"`
			Payload     struct {
				Status string `json:"status"`
			} `json:"payload"`
		}
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if decoded.Version != 1 || decoded.Type != "order.status_changed" ||
			decoded.AggregateID != e.AggregateID.String() || decoded.Payload.Status != "pending" {
			return errors.New("unexpected envelope " + string(value))
		}
		return nil
	})

	publisher := kafka.NewPublisher(producer, "events", discard())
	require.NoError(t, publisher.Publish(context.Background(), e))
	require.NoError(t, publisher.Close())
}

func TestPublisher_Publish_StopsAtFirstFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewPublisher(producer, "events", discard())
	err := publisher.Publish(context.Background(), event("order.created"), event("order.edited"))

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestPublisher_Publish_HonoursCancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	publisher := kafka.NewPublisher(producer, "events", discard())
	err := publisher.Publish(ctx, event("order.created"))

	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, publisher.Close())
}

func TestLogPublisher_NeverFails(t *testing.T) {
	publisher := kafka.NewLogPublisher(discard())
	assert.NoError(t, publisher.Publish(context.Background(), event("order.created")))
}
