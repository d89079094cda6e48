package schema

import (
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type AddressRead struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Street         string    `json:"street"`
	Intercom       *string   `json:"intercom,omitempty"`
	Floor          *int      `json:"floor,omitempty"`
	Apartment      *string   `json:"apartment,omitempty"`
	IsPrivateHouse bool      `json:"is_private_house"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToAddressRead(a *models.UserAddress) AddressRead {
	return AddressRead{
		ID:             a.ID,
		UserID:         a.UserID,
		Street:         a.Street,
		Intercom:       a.Intercom,
		Floor:          a.Floor,
		Apartment:      a.Apartment,
		IsPrivateHouse: a.IsPrivateHouse,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
