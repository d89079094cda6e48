package schema

import (
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type ProductRead struct {
	ID                uint          `json:"id"`
	Name              string        `json:"name"`
	SubcategoryID     uint          `json:"subcategory_id"`
	PriceCents        int64         `json:"price_cents"`
	Description       *string       `json:"description,omitempty"`
	AvailableToppings []ToppingRead `json:"available_toppings"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ToProductRead не разворачивает категорию продукта — обратная ссылка
// Product→Category→Products дала бы цикл.
func ToProductRead(p *models.Product) ProductRead {
	toppings := make([]ToppingRead, 0, len(p.AvailableToppings))
	for i := range p.AvailableToppings {
		if t := p.AvailableToppings[i].Topping; t != nil {
			toppings = append(toppings, ToToppingRead(t))
		}
	}
	return ProductRead{
		ID:                p.ID,
		Name:              p.Name,
		SubcategoryID:     p.SubcategoryID,
		PriceCents:        p.PriceCents,
		Description:       p.Description,
		AvailableToppings: toppings,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
