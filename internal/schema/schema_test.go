package schema

import (
	"encoding/json"
	"testing"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUserRead_EmptyRelations(t *testing.T) {
	u := &models.User{ID: 1, Name: "Ann", Phone: "+79990001122", Email: "ann@example.com", Role: models.RoleCustomer}

	read := ToUserRead(u)

	// Незагруженные связи — пустые коллекции, в JSON это [], а не null.
	require.NotNil(t, read.Addresses)
	require.NotNil(t, read.Orders)

	raw, err := json.Marshal(read)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"addresses":[]`)
	assert.Contains(t, string(raw), `"orders":[]`)
}

func TestToUserRead_NestedOrders(t *testing.T) {
	u := &models.User{
		ID: 1, Name: "Ann",
		Addresses: []models.UserAddress{{ID: 3, UserID: 1, Street: "Ленина, 1"}},
		Orders: []models.Order{
			{
				ID: 11, UserID: 1, Status: models.OrderStatusPaid, TotalCents: 1300,
				Items: []models.OrderItem{
					{ID: 21, OrderID: 11, ProductID: 5, Quantity: 2, PriceCents: 500,
						Toppings: []models.OrderItemTopping{
							{ID: 31, OrderItemID: 21, ToppingID: 8, PriceCents: 150},
						}},
				},
				Payment: &models.Payment{ID: 41, OrderID: 11, AmountCents: 1300, Status: models.PaymentStatusSucceeded},
			},
		},
	}

	read := ToUserRead(u)

	require.Len(t, read.Orders, 1)
	ord := read.Orders[0]
	assert.Equal(t, models.OrderStatusPaid, ord.Status)
	require.Len(t, ord.Items, 1)
	require.Len(t, ord.Items[0].Toppings, 1)
	assert.Equal(t, int64(150), ord.Items[0].Toppings[0].PriceCents)
	require.NotNil(t, ord.Payment)
	assert.Equal(t, models.PaymentStatusSucceeded, ord.Payment.Status)
}

func TestToCategoryRead_Recursive(t *testing.T) {
	c := &models.Category{
		ID: 1, Name: "Пицца",
		Subcategories: []models.Category{
			{
				ID: 2, Name: "Классическая",
				Products: []models.Product{
					{ID: 10, Name: "Маргарита", SubcategoryID: 2, PriceCents: 50000},
				},
			},
		},
	}

	read := ToCategoryRead(c)

	require.Len(t, read.Subcategories, 1)
	sub := read.Subcategories[0]
	assert.Equal(t, "Классическая", sub.Name)
	require.Len(t, sub.Products, 1)
	assert.Equal(t, "Маргарита", sub.Products[0].Name)
	// Листовая категория проецирует пустые коллекции.
	assert.Empty(t, sub.Subcategories)
	assert.Empty(t, read.Products)
}

func TestToProductRead_SkipsUnloadedToppings(t *testing.T) {
	p := &models.Product{
		ID: 10, Name: "Маргарита", SubcategoryID: 2, PriceCents: 50000,
		AvailableToppings: []models.ProductTopping{
			{ProductID: 10, ToppingID: 5, Topping: &models.Topping{ID: 5, Name: "Сыр", PriceCents: 5000}},
			{ProductID: 10, ToppingID: 6},
		},
	}

	read := ToProductRead(p)

	require.Len(t, read.AvailableToppings, 1)
	assert.Equal(t, uint(5), read.AvailableToppings[0].ID)
}

func TestToOrderRead_NilPayment(t *testing.T) {
	o := &models.Order{
		ID: 11, UserID: 1, DeliveryType: models.DeliveryTypePickup, Status: models.OrderStatusPending,
		Items: []models.OrderItem{
			{ID: 21, OrderID: 11, ProductID: 5, Quantity: 1, PriceCents: 500},
		},
	}

	read := ToOrderRead(o)

	assert.Nil(t, read.Payment)
	assert.Nil(t, read.Address)
	require.Len(t, read.Items, 1)

	raw, err := json.Marshal(read)
	require.NoError(t, err)
	// Нулевой платёж не превращается в пустой объект.
	assert.NotContains(t, string(raw), `"payment"`)
}

func TestToOrderRead_WithAddress(t *testing.T) {
	addrID := uint(3)
	o := &models.Order{
		ID: 11, UserID: 1, AddressID: &addrID, DeliveryType: models.DeliveryTypeDelivery,
		Status:  models.OrderStatusPending,
		Address: &models.UserAddress{ID: 3, UserID: 1, Street: "Ленина, 1"},
	}

	read := ToOrderRead(o)

	require.NotNil(t, read.Address)
	assert.Equal(t, "Ленина, 1", read.Address.Street)
	require.NotNil(t, read.AddressID)
	assert.Equal(t, uint(3), *read.AddressID)
}

func TestToOrderItemRead_ProductShallow(t *testing.T) {
	it := &models.OrderItem{
		ID: 21, OrderID: 11, ProductID: 5, Quantity: 2, PriceCents: 500,
		Product: &models.Product{ID: 5, Name: "Маргарита", SubcategoryID: 2, PriceCents: 700},
	}

	read := ToOrderItemRead(it)

	// Цена позиции — снимок, независимый от текущей цены продукта.
	assert.Equal(t, int64(500), read.PriceCents)
	require.NotNil(t, read.Product)
	assert.Equal(t, int64(700), read.Product.PriceCents)
}
