package repository

import (
	"context"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type OrderItemToppingRepo interface {
	BulkCreate(ctx context.Context, toppings []models.OrderItemTopping) error
	GetByItemIDs(ctx context.Context, itemIDs []uint) ([]models.OrderItemTopping, error)
}

type orderItemToppingRepo struct{ db *gorm.DB }

func NewOrderItemToppingRepo(db *gorm.DB) OrderItemToppingRepo {
	return &orderItemToppingRepo{db: db}
}

func (r *orderItemToppingRepo) BulkCreate(ctx context.Context, toppings []models.OrderItemTopping) error {
	if len(toppings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&toppings).Error
}

func (r *orderItemToppingRepo) GetByItemIDs(ctx context.Context, itemIDs []uint) ([]models.OrderItemTopping, error) {
	if len(itemIDs) == 0 {
		return []models.OrderItemTopping{}, nil
	}
	var rows []models.OrderItemTopping
	err := r.db.WithContext(ctx).Where("order_item_id IN ?", itemIDs).Find(&rows).Error
	return rows, err
}
