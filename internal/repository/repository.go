package repository

import "gorm.io/gorm"

type Repository struct {
	DB                *gorm.DB
	Users             UserRepo
	Addresses         AddressRepo
	Categories        CategoryRepo
	Toppings          ToppingRepo
	Products          ProductRepo
	Orders            OrderRepo
	OrderItems        OrderItemRepo
	OrderItemToppings OrderItemToppingRepo
	Payments          PaymentRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:                db,
		Users:             NewUserRepo(db),
		Addresses:         NewAddressRepo(db),
		Categories:        NewCategoryRepo(db),
		Toppings:          NewToppingRepo(db),
		Products:          NewProductRepo(db),
		Orders:            NewOrderRepo(db),
		OrderItems:        NewOrderItemRepo(db),
		OrderItemToppings: NewOrderItemToppingRepo(db),
		Payments:          NewPaymentRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
