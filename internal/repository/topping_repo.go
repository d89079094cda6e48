package repository

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type ToppingRepo interface {
	Create(ctx context.Context, t *models.Topping) error
	GetByID(ctx context.Context, id uint) (*models.Topping, error)
	List(ctx context.Context) ([]models.Topping, error)
	BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Topping, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type toppingRepo struct{ db *gorm.DB }

func NewToppingRepo(db *gorm.DB) ToppingRepo { return &toppingRepo{db: db} }

func (r *toppingRepo) Create(ctx context.Context, t *models.Topping) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *toppingRepo) GetByID(ctx context.Context, id uint) (*models.Topping, error) {
	var t models.Topping
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *toppingRepo) List(ctx context.Context) ([]models.Topping, error) {
	var list []models.Topping
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *toppingRepo) BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Topping, error) {
	if len(ids) == 0 {
		return []models.Topping{}, nil
	}
	var list []models.Topping
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *toppingRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Topping{}).Where("id = ?", id).Updates(fields).Error
}

func (r *toppingRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Topping{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
