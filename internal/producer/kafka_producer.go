package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/segmentio/kafka-go"
)

// OrderEventProducer публикует события заказов в Kafka.
// Реализует service.EventBus; при отсутствии брокеров сервис работает без шины.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (p *OrderEventProducer) publish(ctx context.Context, key string, msg envelope) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, strconv.FormatUint(uint64(e.OrderID), 10), envelope{
		Type:    "order.created",
		Payload: e,
	})
}

func (p *OrderEventProducer) PublishOrderCancelled(ctx context.Context, e service.OrderCancelledEvent) error {
	return p.publish(ctx, strconv.FormatUint(uint64(e.OrderID), 10), envelope{
		Type:    "order.cancelled",
		Payload: e,
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
