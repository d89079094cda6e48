// Package schema содержит read-модели — неперсистентные проекции сущностей
// для сериализации в API-ответы. Проекция строго односторонняя (сверху вниз),
// обратные ссылки не разворачиваются, чтобы исключить бесконечную рекурсию
// (User→Order→User). Незагруженные связи проецируются в пустые коллекции или
// nil — проектор никогда не обращается к базе.
package schema

import (
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type UserRead struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	Role      models.Role   `json:"role"`
	Addresses []AddressRead `json:"addresses"`
	Orders    []OrderRead   `json:"orders"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ToUserRead проецирует пользователя вместе с предзагруженными адресами и заказами.
func ToUserRead(u *models.User) UserRead {
	addresses := make([]AddressRead, 0, len(u.Addresses))
	for i := range u.Addresses {
		addresses = append(addresses, ToAddressRead(&u.Addresses[i]))
	}
	orders := make([]OrderRead, 0, len(u.Orders))
	for i := range u.Orders {
		orders = append(orders, ToOrderRead(&u.Orders[i]))
	}
	return UserRead{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Role:      u.Role,
		Addresses: addresses,
		Orders:    orders,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
