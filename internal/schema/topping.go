package schema

import (
	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type ToppingRead struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

func ToToppingRead(t *models.Topping) ToppingRead {
	return ToppingRead{
		ID:         t.ID,
		Name:       t.Name,
		PriceCents: t.PriceCents,
	}
}
