package dto

import "time"

type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,e164"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,e164"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type CreateAddressRequest struct {
	Street         string  `json:"street" binding:"required"`
	Intercom       *string `json:"intercom,omitempty"`
	Floor          *int    `json:"floor,omitempty"`
	Apartment      *string `json:"apartment,omitempty"`
	IsPrivateHouse bool    `json:"is_private_house"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	ParentID    *uint   `json:"parent_id,omitempty"`
	ClearParent bool    `json:"clear_parent"`
}

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	SubcategoryID uint    `json:"subcategory_id" binding:"required"`
	PriceCents    int64   `json:"price_cents" binding:"min=0"`
	Description   *string `json:"description,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string `json:"name,omitempty"`
	SubcategoryID *uint   `json:"subcategory_id,omitempty"`
	PriceCents    *int64  `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Description   *string `json:"description,omitempty"`
}

type CreateToppingRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
}

type UpdateToppingRequest struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty" binding:"omitempty,min=0"`
}

type CreateOrderItemRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	Quantity   uint32 `json:"quantity" binding:"required,min=1"`
	ToppingIDs []uint `json:"topping_ids,omitempty"`
}

type CreateOrderRequest struct {
	AddressID      *uint                    `json:"address_id,omitempty"`
	DeliveryType   string                   `json:"delivery_type,omitempty" binding:"omitempty,oneof=delivery pickup"`
	CourierComment *string                  `json:"courier_comment,omitempty"`
	DeliveryTime   *time.Time               `json:"delivery_time,omitempty"`
	Items          []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid preparing delivering completed cancelled"`
}

type RecordPaymentRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,min=0"`
}
