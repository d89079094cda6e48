package service

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/repository"
	"github.com/cl7paBka/goar-tomsk-web/internal/schema"

	"go.uber.org/zap"
)

type CatalogService struct {
	categories repository.CategoryRepo
	products   repository.ProductRepo
	toppings   repository.ToppingRepo

	log *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		categories: repo.Categories,
		products:   repo.Products,
		toppings:   repo.Toppings,
		log:        log,
	}
}

// ---------- Категории ----------

type CreateCategoryInput struct {
	Name     string
	ParentID *uint
}

type UpdateCategoryInput struct {
	Name     *string
	ParentID *uint
	// ClearParent переводит категорию в корень (parent_id = NULL).
	ClearParent bool
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*schema.CategoryRead, error) {
	if in.ParentID != nil {
		parent, err := s.categories.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}

	c := &models.Category{Name: in.Name, ParentID: in.ParentID}
	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrForeignKey) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	read := schema.ToCategoryRead(c)
	return &read, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*schema.CategoryRead, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	read := schema.ToCategoryRead(c)
	return &read, nil
}

// ListCategories возвращает дерево категорий, собранное в памяти из плоского
// списка: один запрос вместо рекурсивных предзагрузок.
func (s *CatalogService) ListCategories(ctx context.Context) ([]schema.CategoryRead, error) {
	flat, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byParent := make(map[uint][]*models.Category)
	var roots []*models.Category
	for i := range flat {
		c := &flat[i]
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}

	var attach func(c *models.Category)
	attach = func(c *models.Category) {
		for _, child := range byParent[c.ID] {
			attach(child)
			c.Subcategories = append(c.Subcategories, *child)
		}
	}

	out := make([]schema.CategoryRead, 0, len(roots))
	for _, root := range roots {
		attach(root)
		out = append(out, schema.ToCategoryRead(root))
	}
	return out, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, in UpdateCategoryInput) (*schema.CategoryRead, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCategoryNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	switch {
	case in.ClearParent:
		fields["parent_id"] = nil
	case in.ParentID != nil:
		if err := s.checkNoCycle(ctx, id, *in.ParentID); err != nil {
			return nil, err
		}
		fields["parent_id"] = *in.ParentID
	}

	if err := s.categories.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrForeignKey) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return s.GetCategory(ctx, id)
}

// checkNoCycle запрещает назначать родителем саму категорию или её потомка:
// parent_id должен оставаться деревом.
func (s *CatalogService) checkNoCycle(ctx context.Context, id, newParentID uint) error {
	if id == newParentID {
		return ErrCategoryCycle
	}

	cur := newParentID
	for {
		c, err := s.categories.GetByID(ctx, cur)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrCategoryNotFound
		}
		if c.ParentID == nil {
			return nil
		}
		if *c.ParentID == id {
			return ErrCategoryCycle
		}
		cur = *c.ParentID
	}
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	s.log.Info("Категория удалена вместе с подкатегориями и продуктами", zap.Uint("category_id", id))
	return nil
}

// ---------- Продукты ----------

type CreateProductInput struct {
	Name          string
	SubcategoryID uint
	PriceCents    int64
	Description   *string
}

type UpdateProductInput struct {
	Name          *string
	SubcategoryID *uint
	PriceCents    *int64
	Description   *string
}

func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*schema.ProductRead, error) {
	p := &models.Product{
		Name:          in.Name,
		SubcategoryID: in.SubcategoryID,
		PriceCents:    in.PriceCents,
		Description:   in.Description,
	}

	if err := s.products.Create(ctx, p); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrForeignKey) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	read := schema.ToProductRead(p)
	return &read, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*schema.ProductRead, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	read := schema.ToProductRead(p)
	return &read, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, f repository.ProductListFilter) ([]schema.ProductRead, int64, error) {
	list, total, err := s.products.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]schema.ProductRead, 0, len(list))
	for i := range list {
		out = append(out, schema.ToProductRead(&list[i]))
	}
	return out, total, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, in UpdateProductInput) (*schema.ProductRead, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.SubcategoryID != nil {
		fields["subcategory_id"] = *in.SubcategoryID
	}
	if in.PriceCents != nil {
		fields["price_cents"] = *in.PriceCents
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}

	if err := s.products.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrForeignKey) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return s.GetProduct(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

// ---------- Топпинги ----------

type CreateToppingInput struct {
	Name       string
	PriceCents int64
}

type UpdateToppingInput struct {
	Name       *string
	PriceCents *int64
}

func (s *CatalogService) CreateTopping(ctx context.Context, in CreateToppingInput) (*schema.ToppingRead, error) {
	t := &models.Topping{Name: in.Name, PriceCents: in.PriceCents}
	if err := s.toppings.Create(ctx, t); err != nil {
		return nil, err
	}
	read := schema.ToToppingRead(t)
	return &read, nil
}

func (s *CatalogService) GetTopping(ctx context.Context, id uint) (*schema.ToppingRead, error) {
	t, err := s.toppings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrToppingNotFound
	}
	read := schema.ToToppingRead(t)
	return &read, nil
}

func (s *CatalogService) ListToppings(ctx context.Context) ([]schema.ToppingRead, error) {
	list, err := s.toppings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]schema.ToppingRead, 0, len(list))
	for i := range list {
		out = append(out, schema.ToToppingRead(&list[i]))
	}
	return out, nil
}

func (s *CatalogService) UpdateTopping(ctx context.Context, id uint, in UpdateToppingInput) (*schema.ToppingRead, error) {
	existing, err := s.toppings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrToppingNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.PriceCents != nil {
		fields["price_cents"] = *in.PriceCents
	}

	if err := s.toppings.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetTopping(ctx, id)
}

func (s *CatalogService) DeleteTopping(ctx context.Context, id uint) error {
	ok, err := s.toppings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrToppingNotFound
	}
	return nil
}

func (s *CatalogService) AttachTopping(ctx context.Context, productID, toppingID uint) error {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	t, err := s.toppings.GetByID(ctx, toppingID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrToppingNotFound
	}

	if err := s.products.AttachTopping(ctx, productID, toppingID); err != nil {
		switch terr := repository.TranslateError(err); {
		case errors.Is(terr, repository.ErrDuplicate):
			// Уже привязан — идемпотентность сохраняется и при гонке.
			return nil
		case errors.Is(terr, repository.ErrForeignKey):
			// Гонка с удалением: выясняем, кого не стало.
			p, perr := s.products.GetByID(ctx, productID)
			if perr == nil && p == nil {
				return ErrProductNotFound
			}
			return ErrToppingNotFound
		}
		return err
	}
	return nil
}

func (s *CatalogService) DetachTopping(ctx context.Context, productID, toppingID uint) error {
	ok, err := s.products.DetachTopping(ctx, productID, toppingID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrToppingNotFound
	}
	return nil
}
