package repository

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	ListAll(ctx context.Context) ([]models.Category, error)
	ListRoots(ctx context.Context) ([]models.Category, error)
	ListChildren(ctx context.Context, parentID uint) ([]models.Category, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID предзагружает один уровень подкатегорий с их продуктами.
// Полное дерево собирает сервис по списку всех категорий, а не N+1 запросами.
func (r *categoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Preload("Subcategories.Products").
		Preload("Subcategories.Products.AvailableToppings").
		Preload("Subcategories.Products.AvailableToppings.Topping").
		Preload("Products").
		Preload("Products.AvailableToppings").
		Preload("Products.AvailableToppings.Topping").
		First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) ListAll(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	err := r.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.AvailableToppings").
		Preload("Products.AvailableToppings.Topping").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *categoryRepo) ListRoots(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Preload("Subcategories").
		Preload("Subcategories.Products").
		Preload("Products").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *categoryRepo) ListChildren(ctx context.Context, parentID uint) ([]models.Category, error) {
	var list []models.Category
	err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *categoryRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

// Delete каскадно удаляет подкатегории и их продукты (FK в БД).
func (r *categoryRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
