package models

import (
	"time"
)

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:text;not null;uniqueIndex:ux_users_phone"`
	Email     string    `gorm:"type:text;not null"` // уникальность — функциональный индекс lower(email)
	Role      Role      `gorm:"type:text;not null;default:'customer';index"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Addresses []UserAddress `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []Order       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

type UserAddress struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;index"`
	Street         string    `gorm:"type:text;not null"`
	Intercom       *string   `gorm:"type:text"`
	Floor          *int      `gorm:"type:int"`
	Apartment      *string   `gorm:"type:text"`
	IsPrivateHouse bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null;default:now()"`
	UpdatedAt      time.Time `gorm:"not null;default:now()"`
}

func (UserAddress) TableName() string { return "user_addresses" }

// Category — самоссылающееся дерево через parent_id.
// Удаление родителя каскадно удаляет подкатегории и их продукты.
type Category struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:text;not null"`
	ParentID *uint  `gorm:"index"`

	Subcategories []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Products      []Product  `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string { return "categories" }

type Topping struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:text;not null"`
	PriceCents int64  `gorm:"not null;default:0"`
}

func (Topping) TableName() string { return "toppings" }

type Product struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"type:text;not null"`
	SubcategoryID uint      `gorm:"not null;index"`
	PriceCents    int64     `gorm:"not null;default:0"`
	Description   *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
	UpdatedAt     time.Time `gorm:"not null;default:now()"`

	AvailableToppings []ProductTopping `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

// ProductTopping — связка many-to-many продукт↔топпинг.
type ProductTopping struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"not null;index;uniqueIndex:ux_product_toppings_product_topping"`
	ToppingID uint `gorm:"not null;uniqueIndex:ux_product_toppings_product_topping"`

	Topping *Topping `gorm:"foreignKey:ToppingID;constraint:OnDelete:CASCADE"`
}

func (ProductTopping) TableName() string { return "product_toppings" }

type Order struct {
	ID             uint         `gorm:"primaryKey"`
	UserID         uint         `gorm:"not null;index"`
	AddressID      *uint        `gorm:"index"` // NULL при самовывозе
	DeliveryType   DeliveryType `gorm:"type:text;not null;default:'delivery'"`
	Status         OrderStatus  `gorm:"type:text;not null;default:'pending';index"`
	TotalCents     int64        `gorm:"not null;default:0"`
	CourierComment *string      `gorm:"type:text"`
	DeliveryTime   *time.Time
	CreatedAt      time.Time `gorm:"not null;default:now();index"`
	UpdatedAt      time.Time `gorm:"not null;default:now()"`

	Address *UserAddress `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
	Items   []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment *Payment     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

// OrderItem хранит цену на момент заказа, независимо от текущей цены продукта.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    uint      `gorm:"not null;index;uniqueIndex:ux_order_items_order_product"`
	ProductID  uint      `gorm:"not null;uniqueIndex:ux_order_items_order_product"`
	Quantity   uint32    `gorm:"type:int;not null"` // CHECK quantity > 0 — в миграции
	PriceCents int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;default:now()"`

	Product  *Product           `gorm:"foreignKey:ProductID"`
	Toppings []OrderItemTopping `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderItemTopping — снимок цены топпинга на момент заказа.
type OrderItemTopping struct {
	ID          uint  `gorm:"primaryKey"`
	OrderItemID uint  `gorm:"not null;index"`
	ToppingID   uint  `gorm:"not null"`
	PriceCents  int64 `gorm:"not null"`

	Topping *Topping `gorm:"foreignKey:ToppingID"`
}

func (OrderItemTopping) TableName() string { return "order_item_toppings" }

type Payment struct {
	ID          uint          `gorm:"primaryKey"`
	UserID      uint          `gorm:"not null;index"`
	OrderID     uint          `gorm:"not null;uniqueIndex:ux_payments_order"` // один платёж на заказ
	AmountCents int64         `gorm:"not null"`
	Status      PaymentStatus `gorm:"type:text;not null;default:'pending';index"`
	CreatedAt   time.Time     `gorm:"not null;default:now()"`
	UpdatedAt   time.Time     `gorm:"not null;default:now()"`
}

func (Payment) TableName() string { return "payments" }
