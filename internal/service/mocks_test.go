package service

import (
	"context"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/repository"
)

// Моки репозиториев на функциональных полях: метод без заданной функции
// возвращает нулевые значения.

type mockUserRepo struct {
	CreateFunc               func(ctx context.Context, u *models.User) error
	GetByIDFunc              func(ctx context.Context, id uint) (*models.User, error)
	GetByPhoneFunc           func(ctx context.Context, phone string) (*models.User, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*models.User, error)
	ExistsByPhoneOrEmailFunc func(ctx context.Context, phone, email string) (bool, error)
	UpdateFieldsFunc         func(ctx context.Context, id uint, fields map[string]any) error
	DeleteFunc               func(ctx context.Context, id uint) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	if m.GetByPhoneFunc == nil {
		return nil, nil
	}
	return m.GetByPhoneFunc(ctx, phone)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc == nil {
		return nil, nil
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepo) ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error) {
	if m.ExistsByPhoneOrEmailFunc == nil {
		return false, nil
	}
	return m.ExistsByPhoneOrEmailFunc(ctx, phone, email)
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc == nil {
		return nil
	}
	return m.UpdateFieldsFunc(ctx, id, fields)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc == nil {
		return false, nil
	}
	return m.DeleteFunc(ctx, id)
}

type mockAddressRepo struct {
	CreateFunc        func(ctx context.Context, a *models.UserAddress) error
	GetByIDFunc       func(ctx context.Context, id uint) (*models.UserAddress, error)
	ListByUserFunc    func(ctx context.Context, userID uint) ([]models.UserAddress, error)
	UpdateFieldsFunc  func(ctx context.Context, id uint, fields map[string]any) error
	DeleteForUserFunc func(ctx context.Context, id, userID uint) (bool, error)
}

func (m *mockAddressRepo) Create(ctx context.Context, a *models.UserAddress) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, a)
}

func (m *mockAddressRepo) GetByID(ctx context.Context, id uint) (*models.UserAddress, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockAddressRepo) ListByUser(ctx context.Context, userID uint) ([]models.UserAddress, error) {
	if m.ListByUserFunc == nil {
		return nil, nil
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockAddressRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc == nil {
		return nil
	}
	return m.UpdateFieldsFunc(ctx, id, fields)
}

func (m *mockAddressRepo) DeleteForUser(ctx context.Context, id, userID uint) (bool, error) {
	if m.DeleteForUserFunc == nil {
		return false, nil
	}
	return m.DeleteForUserFunc(ctx, id, userID)
}

type mockCategoryRepo struct {
	CreateFunc       func(ctx context.Context, c *models.Category) error
	GetByIDFunc      func(ctx context.Context, id uint) (*models.Category, error)
	ListAllFunc      func(ctx context.Context) ([]models.Category, error)
	ListRootsFunc    func(ctx context.Context) ([]models.Category, error)
	ListChildrenFunc func(ctx context.Context, parentID uint) ([]models.Category, error)
	UpdateFieldsFunc func(ctx context.Context, id uint, fields map[string]any) error
	DeleteFunc       func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *models.Category) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, c)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockCategoryRepo) ListAll(ctx context.Context) ([]models.Category, error) {
	if m.ListAllFunc == nil {
		return nil, nil
	}
	return m.ListAllFunc(ctx)
}

func (m *mockCategoryRepo) ListRoots(ctx context.Context) ([]models.Category, error) {
	if m.ListRootsFunc == nil {
		return nil, nil
	}
	return m.ListRootsFunc(ctx)
}

func (m *mockCategoryRepo) ListChildren(ctx context.Context, parentID uint) ([]models.Category, error) {
	if m.ListChildrenFunc == nil {
		return nil, nil
	}
	return m.ListChildrenFunc(ctx, parentID)
}

func (m *mockCategoryRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc == nil {
		return nil
	}
	return m.UpdateFieldsFunc(ctx, id, fields)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc == nil {
		return false, nil
	}
	return m.DeleteFunc(ctx, id)
}

type mockToppingRepo struct {
	CreateFunc        func(ctx context.Context, t *models.Topping) error
	GetByIDFunc       func(ctx context.Context, id uint) (*models.Topping, error)
	ListFunc          func(ctx context.Context) ([]models.Topping, error)
	BatchGetByIDsFunc func(ctx context.Context, ids []uint) ([]models.Topping, error)
	UpdateFieldsFunc  func(ctx context.Context, id uint, fields map[string]any) error
	DeleteFunc        func(ctx context.Context, id uint) (bool, error)
}

func (m *mockToppingRepo) Create(ctx context.Context, t *models.Topping) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, t)
}

func (m *mockToppingRepo) GetByID(ctx context.Context, id uint) (*models.Topping, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockToppingRepo) List(ctx context.Context) ([]models.Topping, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx)
}

func (m *mockToppingRepo) BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Topping, error) {
	if m.BatchGetByIDsFunc == nil {
		return nil, nil
	}
	return m.BatchGetByIDsFunc(ctx, ids)
}

func (m *mockToppingRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc == nil {
		return nil
	}
	return m.UpdateFieldsFunc(ctx, id, fields)
}

func (m *mockToppingRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc == nil {
		return false, nil
	}
	return m.DeleteFunc(ctx, id)
}

type mockProductRepo struct {
	CreateFunc        func(ctx context.Context, p *models.Product) error
	GetByIDFunc       func(ctx context.Context, id uint) (*models.Product, error)
	ListFunc          func(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	BatchGetByIDsFunc func(ctx context.Context, ids []uint) ([]models.Product, error)
	UpdateFieldsFunc  func(ctx context.Context, id uint, fields map[string]any) error
	DeleteFunc        func(ctx context.Context, id uint) (bool, error)
	AttachToppingFunc func(ctx context.Context, productID, toppingID uint) error
	DetachToppingFunc func(ctx context.Context, productID, toppingID uint) (bool, error)
	HasToppingFunc    func(ctx context.Context, productID, toppingID uint) (bool, error)
}

func (m *mockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, p)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockProductRepo) List(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	if m.ListFunc == nil {
		return nil, 0, nil
	}
	return m.ListFunc(ctx, f)
}

func (m *mockProductRepo) BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	if m.BatchGetByIDsFunc == nil {
		return nil, nil
	}
	return m.BatchGetByIDsFunc(ctx, ids)
}

func (m *mockProductRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc == nil {
		return nil
	}
	return m.UpdateFieldsFunc(ctx, id, fields)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc == nil {
		return false, nil
	}
	return m.DeleteFunc(ctx, id)
}

func (m *mockProductRepo) AttachTopping(ctx context.Context, productID, toppingID uint) error {
	if m.AttachToppingFunc == nil {
		return nil
	}
	return m.AttachToppingFunc(ctx, productID, toppingID)
}

func (m *mockProductRepo) DetachTopping(ctx context.Context, productID, toppingID uint) (bool, error) {
	if m.DetachToppingFunc == nil {
		return false, nil
	}
	return m.DetachToppingFunc(ctx, productID, toppingID)
}

func (m *mockProductRepo) HasTopping(ctx context.Context, productID, toppingID uint) (bool, error) {
	if m.HasToppingFunc == nil {
		return false, nil
	}
	return m.HasToppingFunc(ctx, productID, toppingID)
}

type mockOrderItemRepo struct {
	BulkCreateFunc      func(ctx context.Context, items []models.OrderItem) error
	GetByOrderIDFunc    func(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	SumByOrderFunc      func(ctx context.Context, orderID uint) (int64, error)
	DeleteByOrderIDFunc func(ctx context.Context, orderID uint) (int64, error)
}

func (m *mockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc == nil {
		return nil
	}
	return m.BulkCreateFunc(ctx, items)
}

func (m *mockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc == nil {
		return nil, nil
	}
	return m.GetByOrderIDFunc(ctx, orderID)
}

func (m *mockOrderItemRepo) SumByOrder(ctx context.Context, orderID uint) (int64, error) {
	if m.SumByOrderFunc == nil {
		return 0, nil
	}
	return m.SumByOrderFunc(ctx, orderID)
}

func (m *mockOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uint) (int64, error) {
	if m.DeleteByOrderIDFunc == nil {
		return 0, nil
	}
	return m.DeleteByOrderIDFunc(ctx, orderID)
}

type mockOrderItemToppingRepo struct {
	BulkCreateFunc   func(ctx context.Context, toppings []models.OrderItemTopping) error
	GetByItemIDsFunc func(ctx context.Context, itemIDs []uint) ([]models.OrderItemTopping, error)
}

func (m *mockOrderItemToppingRepo) BulkCreate(ctx context.Context, toppings []models.OrderItemTopping) error {
	if m.BulkCreateFunc == nil {
		return nil
	}
	return m.BulkCreateFunc(ctx, toppings)
}

func (m *mockOrderItemToppingRepo) GetByItemIDs(ctx context.Context, itemIDs []uint) ([]models.OrderItemTopping, error) {
	if m.GetByItemIDsFunc == nil {
		return nil, nil
	}
	return m.GetByItemIDsFunc(ctx, itemIDs)
}

// mockOrderRepo.WithTx вызывает fn с самим моком и моками позиций/топпингов,
// имитируя транзакцию без БД.
type mockOrderRepo struct {
	CreateFunc         func(ctx context.Context, o *models.Order) error
	GetByIDFunc        func(ctx context.Context, id uint) (*models.Order, error)
	GetByIDForUserFunc func(ctx context.Context, id, userID uint) (*models.Order, error)
	ListFunc           func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
	UpdateStatusFunc   func(ctx context.Context, id uint, status models.OrderStatus) error
	UpdateTotalsFunc   func(ctx context.Context, id uint, totalCents int64) error
	DeleteFunc         func(ctx context.Context, id uint) (bool, error)
	ExistsFunc         func(ctx context.Context, id uint) (bool, error)

	Items    *mockOrderItemRepo
	Toppings *mockOrderItemToppingRepo
}

func (m *mockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, o)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockOrderRepo) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	if m.GetByIDForUserFunc == nil {
		return nil, nil
	}
	return m.GetByIDForUserFunc(ctx, id, userID)
}

func (m *mockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc == nil {
		return nil, 0, nil
	}
	return m.ListFunc(ctx, f)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	if m.UpdateStatusFunc == nil {
		return nil
	}
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockOrderRepo) UpdateTotals(ctx context.Context, id uint, totalCents int64) error {
	if m.UpdateTotalsFunc == nil {
		return nil
	}
	return m.UpdateTotalsFunc(ctx, id, totalCents)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc == nil {
		return false, nil
	}
	return m.DeleteFunc(ctx, id)
}

func (m *mockOrderRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc == nil {
		return false, nil
	}
	return m.ExistsFunc(ctx, id)
}

func (m *mockOrderRepo) WithTx(ctx context.Context, fn func(repository.OrderRepo, repository.OrderItemRepo, repository.OrderItemToppingRepo) error) error {
	items := m.Items
	if items == nil {
		items = &mockOrderItemRepo{}
	}
	toppings := m.Toppings
	if toppings == nil {
		toppings = &mockOrderItemToppingRepo{}
	}
	return fn(m, items, toppings)
}

type mockPaymentRepo struct {
	CreateFunc       func(ctx context.Context, p *models.Payment) error
	GetByIDFunc      func(ctx context.Context, id uint) (*models.Payment, error)
	GetByOrderIDFunc func(ctx context.Context, orderID uint) (*models.Payment, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status models.PaymentStatus) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, p)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPaymentRepo) GetByOrderID(ctx context.Context, orderID uint) (*models.Payment, error) {
	if m.GetByOrderIDFunc == nil {
		return nil, nil
	}
	return m.GetByOrderIDFunc(ctx, orderID)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	if m.UpdateStatusFunc == nil {
		return nil
	}
	return m.UpdateStatusFunc(ctx, id, status)
}

type mockEventBus struct {
	PublishOrderCreatedFunc   func(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderCancelledFunc func(ctx context.Context, e OrderCancelledEvent) error
}

func (m *mockEventBus) PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error {
	if m.PublishOrderCreatedFunc == nil {
		return nil
	}
	return m.PublishOrderCreatedFunc(ctx, e)
}

func (m *mockEventBus) PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error {
	if m.PublishOrderCancelledFunc == nil {
		return nil
	}
	return m.PublishOrderCancelledFunc(ctx, e)
}
