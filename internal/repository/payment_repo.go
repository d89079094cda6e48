package repository

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID uint) (*models.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status models.PaymentStatus) error
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) PaymentRepo { return &paymentRepo{db: db} }

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) GetByOrderID(ctx context.Context, orderID uint) (*models.Payment, error) {
	var p models.Payment
	err := r.db.WithContext(ctx).First(&p, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).
		Update("status", status).Error
}
