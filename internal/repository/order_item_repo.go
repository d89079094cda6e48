package repository

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepo interface {
	BulkCreate(ctx context.Context, items []models.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	SumByOrder(ctx context.Context, orderID uint) (totalCents int64, err error)
	DeleteByOrderID(ctx context.Context, orderID uint) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Toppings").
		Preload("Toppings.Topping").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rows, err
}

// SumByOrder считает сумму позиций вместе с топпингами.
func (r *orderItemRepo) SumByOrder(ctx context.Context, orderID uint) (int64, error) {
	var itemsTotal int64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Select("COALESCE(SUM(price_cents * quantity),0)").
		Where("order_id = ?", orderID).
		Scan(&itemsTotal).Error
	if err != nil {
		return 0, err
	}

	var toppingsTotal int64
	err = r.db.WithContext(ctx).Model(&models.OrderItemTopping{}).
		Select("COALESCE(SUM(order_item_toppings.price_cents * order_items.quantity),0)").
		Joins("JOIN order_items ON order_items.id = order_item_toppings.order_item_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&toppingsTotal).Error
	if err != nil {
		return 0, err
	}

	return itemsTotal + toppingsTotal, nil
}

func (r *orderItemRepo) DeleteByOrderID(ctx context.Context, orderID uint) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{})
	return tx.RowsAffected, tx.Error
}
