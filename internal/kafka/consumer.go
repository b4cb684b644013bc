package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	reader *kafka.Reader
	log    *zap.SugaredLogger
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.SugaredLogger) *Consumer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads flight events until the context is canceled or the handler
// fails. Messages that do not decode as a FlightEvent are skipped, not
// redelivered.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, FlightEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, ok := decodeFlightEvent(msg.Value)
		if !ok {
			c.log.Warnw("skipping undecodable flight event", "topic", msg.Topic, "offset", msg.Offset)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeFlightEvent(value []byte) (FlightEvent, bool) {
	var event FlightEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return FlightEvent{}, false
	}
	return event, true
}
