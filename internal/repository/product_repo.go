package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductListFilter struct {
	SubcategoryID *uint
	Query         string // по name/description
	Limit         int
	Offset        int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) (bool, error)

	AttachTopping(ctx context.Context, productID, toppingID uint) error
	DetachTopping(ctx context.Context, productID, toppingID uint) (bool, error)
	HasTopping(ctx context.Context, productID, toppingID uint) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("AvailableToppings").
		Preload("AvailableToppings.Topping").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if f.SubcategoryID != nil {
		q = q.Where("subcategory_id = ?", *f.SubcategoryID)
	}

	if s := strings.TrimSpace(f.Query); s != "" {
		q = q.Where("lower(name) LIKE lower(?) OR lower(description) LIKE lower(?)", "%"+s+"%", "%"+s+"%")
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

	var list []models.Product
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).
		Preload("AvailableToppings").
		Preload("AvailableToppings.Topping").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var list []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

// AttachTopping идемпотентен: повторная привязка того же топпинга не ошибка.
func (r *productRepo) AttachTopping(ctx context.Context, productID, toppingID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ProductTopping{ProductID: productID, ToppingID: toppingID}).Error
}

func (r *productRepo) DetachTopping(ctx context.Context, productID, toppingID uint) (bool, error) {
	tx := r.db.WithContext(ctx).
		Delete(&models.ProductTopping{}, "product_id = ? AND topping_id = ?", productID, toppingID)
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) HasTopping(ctx context.Context, productID, toppingID uint) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.ProductTopping{}).
		Where("product_id = ? AND topping_id = ?", productID, toppingID).
		Count(&cnt).Error
	return cnt > 0, err
}
