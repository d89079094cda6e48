package schema

import (
	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type OrderItemRead struct {
	ID         uint                   `json:"id"`
	OrderID    uint                   `json:"order_id"`
	ProductID  uint                   `json:"product_id"`
	Quantity   uint32                 `json:"quantity"`
	PriceCents int64                  `json:"price_cents"` // снимок цены на момент заказа
	Product    *ProductRead           `json:"product,omitempty"`
	Toppings   []OrderItemToppingRead `json:"toppings"`
}

func ToOrderItemRead(it *models.OrderItem) OrderItemRead {
	toppings := make([]OrderItemToppingRead, 0, len(it.Toppings))
	for i := range it.Toppings {
		toppings = append(toppings, ToOrderItemToppingRead(&it.Toppings[i]))
	}

	var product *ProductRead
	if it.Product != nil {
		p := ToProductRead(it.Product)
		product = &p
	}

	return OrderItemRead{
		ID:         it.ID,
		OrderID:    it.OrderID,
		ProductID:  it.ProductID,
		Quantity:   it.Quantity,
		PriceCents: it.PriceCents,
		Product:    product,
		Toppings:   toppings,
	}
}

type OrderItemToppingRead struct {
	ID          uint         `json:"id"`
	OrderItemID uint         `json:"order_item_id"`
	ToppingID   uint         `json:"topping_id"`
	PriceCents  int64        `json:"price_cents"` // снимок цены топпинга
	Topping     *ToppingRead `json:"topping,omitempty"`
}

func ToOrderItemToppingRead(t *models.OrderItemTopping) OrderItemToppingRead {
	var topping *ToppingRead
	if t.Topping != nil {
		tr := ToToppingRead(t.Topping)
		topping = &tr
	}
	return OrderItemToppingRead{
		ID:          t.ID,
		OrderItemID: t.OrderItemID,
		ToppingID:   t.ToppingID,
		PriceCents:  t.PriceCents,
		Topping:     topping,
	}
}
