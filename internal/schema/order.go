package schema

import (
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type OrderRead struct {
	ID             uint                `json:"id"`
	UserID         uint                `json:"user_id"`
	AddressID      *uint               `json:"address_id,omitempty"`
	DeliveryType   models.DeliveryType `json:"delivery_type"`
	Status         models.OrderStatus  `json:"status"`
	TotalCents     int64               `json:"total_cents"`
	CourierComment *string             `json:"courier_comment,omitempty"`
	DeliveryTime   *time.Time          `json:"delivery_time,omitempty"`
	Address        *AddressRead        `json:"address,omitempty"`
	Items          []OrderItemRead     `json:"items"`
	Payment        *PaymentRead        `json:"payment,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ToOrderRead включает адрес, позиции и платёж заказа. Пользователь обратно не
// разворачивается, nil-платёж остаётся null.
func ToOrderRead(o *models.Order) OrderRead {
	items := make([]OrderItemRead, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, ToOrderItemRead(&o.Items[i]))
	}

	var address *AddressRead
	if o.Address != nil {
		a := ToAddressRead(o.Address)
		address = &a
	}

	var payment *PaymentRead
	if o.Payment != nil {
		p := ToPaymentRead(o.Payment)
		payment = &p
	}

	return OrderRead{
		ID:             o.ID,
		UserID:         o.UserID,
		AddressID:      o.AddressID,
		DeliveryType:   o.DeliveryType,
		Status:         o.Status,
		TotalCents:     o.TotalCents,
		CourierComment: o.CourierComment,
		DeliveryTime:   o.DeliveryTime,
		Address:        address,
		Items:          items,
		Payment:        payment,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
