package repository

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type OrderListFilter struct {
	UserID *uint
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
	UpdateTotals(ctx context.Context, id uint, totalCents int64) error
	Delete(ctx context.Context, id uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)

	WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo, txToppings OrderItemToppingRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Address").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Toppings").
		Preload("Items.Toppings.Topping").
		Preload("Payment")
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	err := r.preload(r.db.WithContext(ctx)).First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *orderRepo) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	var ord models.Order
	err := r.preload(r.db.WithContext(ctx)).First(&ord, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []*models.Order
	err := r.preload(q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset)).Find(&list).Error
	return list, total, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) UpdateTotals(ctx context.Context, id uint, totalCents int64) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("total_cents", totalCents).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo, txToppings OrderItemToppingRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx}, &orderItemToppingRepo{db: tx})
	})
}
