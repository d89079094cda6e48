package schema

import (
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type PaymentRead struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user_id"`
	OrderID     uint                 `json:"order_id"`
	AmountCents int64                `json:"amount_cents"`
	Status      models.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func ToPaymentRead(p *models.Payment) PaymentRead {
	return PaymentRead{
		ID:          p.ID,
		UserID:      p.UserID,
		OrderID:     p.OrderID,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
