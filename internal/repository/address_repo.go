package repository

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type AddressRepo interface {
	Create(ctx context.Context, a *models.UserAddress) error
	GetByID(ctx context.Context, id uint) (*models.UserAddress, error)
	ListByUser(ctx context.Context, userID uint) ([]models.UserAddress, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	DeleteForUser(ctx context.Context, id, userID uint) (bool, error)
}

type addressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) AddressRepo { return &addressRepo{db: db} }

func (r *addressRepo) Create(ctx context.Context, a *models.UserAddress) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *addressRepo) GetByID(ctx context.Context, id uint) (*models.UserAddress, error) {
	var a models.UserAddress
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepo) ListByUser(ctx context.Context, userID uint) ([]models.UserAddress, error) {
	var list []models.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *addressRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.UserAddress{}).Where("id = ?", id).Updates(fields).Error
}

func (r *addressRepo) DeleteForUser(ctx context.Context, id, userID uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.UserAddress{}, "id = ? AND user_id = ?", id, userID)
	return tx.RowsAffected > 0, tx.Error
}
