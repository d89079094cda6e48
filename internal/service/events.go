package service

import (
	"context"
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type OrderItemEvent struct {
	ProductID  uint   `json:"product_id"`
	Quantity   uint32 `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type OrderCreatedEvent struct {
	OrderID      uint                `json:"order_id"`
	UserID       uint                `json:"user_id"`
	DeliveryType models.DeliveryType `json:"delivery_type"`
	Items        []OrderItemEvent    `json:"items"`
	TotalCents   int64               `json:"total_cents"`
	CreatedAt    time.Time           `json:"created_at"`
}

type OrderCancelledEvent struct {
	OrderID     uint      `json:"order_id"`
	UserID      uint      `json:"user_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error
}
