package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"spiceroute-datagen/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaOrderSink delivers live orders to the streaming topic as
// self-describing JSON records keyed by restaurant id.
type KafkaOrderSink struct {
	Writer *kafka.Writer
}

func NewKafkaOrderSink(writer *kafka.Writer) *KafkaOrderSink {
	return &KafkaOrderSink{Writer: writer}
}

func (s *KafkaOrderSink) Deliver(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order %s: %w", order.ID, err)
	}
	return s.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.RestaurantID),
		Value: payload,
	})
}

func (s *KafkaOrderSink) Close() error {
	return s.Writer.Close()
}

// OrderTap reads live orders back off the topic; used by downstream
// consumers and the integration checks.
type OrderTap struct {
	Reader *kafka.Reader
}

func NewOrderTap(reader *kafka.Reader) *OrderTap {
	return &OrderTap{Reader: reader}
}

func (t *OrderTap) Next(ctx context.Context) (domain.Order, error) {
	message, err := t.Reader.ReadMessage(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	var order domain.Order
	if err := json.Unmarshal(message.Value, &order); err != nil {
		return domain.Order{}, fmt.Errorf("failed to decode order payload: %w", err)
	}
	return order, nil
}

func (t *OrderTap) Close() error {
	return t.Reader.Close()
}
