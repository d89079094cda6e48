package service

import (
	"context"
	"errors"
	"time"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/repository"
	"github.com/cl7paBka/goar-tomsk-web/internal/schema"

	"go.uber.org/zap"
)

type CreateOrderItemInput struct {
	ProductID  uint
	Quantity   uint32
	ToppingIDs []uint
}

type CreateOrderInput struct {
	AddressID      *uint
	DeliveryType   models.DeliveryType
	CourierComment *string
	DeliveryTime   *time.Time
	Items          []CreateOrderItemInput
}

type ListOrdersFilter struct {
	UserID *uint
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type RecordPaymentInput struct {
	AmountCents int64
}

type OrderService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time

	log *zap.Logger
}

func NewOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
		now:    time.Now,
		log:    log,
	}
}

// Допустимые переходы статуса заказа.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:    {models.OrderStatusPaid, models.OrderStatusCancelled},
	models.OrderStatusPaid:       {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing:  {models.OrderStatusDelivering, models.OrderStatusCompleted, models.OrderStatusCancelled},
	models.OrderStatusDelivering: {models.OrderStatusCompleted},
}

func transitionAllowed(from, to models.OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CreateOrder создаёт заказ одной транзакцией: позиции получают снимок текущих
// цен продуктов и топпингов, итог считается из снимков. Последующие изменения
// цен каталога заказ не трогают.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*schema.OrderRead, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}

	// Один продукт — одна позиция (ux_order_items_order_product);
	// дубль отклоняем до транзакции.
	seen := make(map[uint]struct{}, len(in.Items))
	for _, it := range in.Items {
		if _, ok := seen[it.ProductID]; ok {
			return nil, ErrDuplicateItems
		}
		seen[it.ProductID] = struct{}{}
	}

	deliveryType := in.DeliveryType
	if deliveryType == "" {
		deliveryType = models.DeliveryTypeDelivery
	}

	// Доставка требует адрес, принадлежащий заказчику. Самовывоз — без адреса.
	if deliveryType == models.DeliveryTypeDelivery {
		if in.AddressID == nil {
			return nil, ErrAddressRequired
		}
		addr, err := s.repo.Addresses.GetByID(ctx, *in.AddressID)
		if err != nil {
			return nil, err
		}
		if addr == nil || addr.UserID != userID {
			return nil, ErrAddressNotFound
		}
	} else {
		in.AddressID = nil
	}

	var order *models.Order
	now := s.now()

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo, tr repository.OrderItemToppingRepo) error {
		var total int64
		itemsDB := make([]models.OrderItem, 0, len(in.Items))
		itemToppings := make([][]models.OrderItemTopping, 0, len(in.Items))

		for _, it := range in.Items {
			if it.Quantity == 0 {
				return ErrQuantityInvalid
			}

			p, err := s.repo.Products.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return ErrProductNotFound
			}

			available := make(map[uint]int64, len(p.AvailableToppings))
			for _, pt := range p.AvailableToppings {
				if pt.Topping != nil {
					available[pt.ToppingID] = pt.Topping.PriceCents
				}
			}

			var toppingsDB []models.OrderItemTopping
			var toppingsCents int64
			for _, tid := range it.ToppingIDs {
				price, ok := available[tid]
				if !ok {
					return ErrToppingNotAllowed
				}
				toppingsCents += price
				toppingsDB = append(toppingsDB, models.OrderItemTopping{
					ToppingID:  tid,
					PriceCents: price, // снимок цены топпинга
				})
			}

			total += (p.PriceCents + toppingsCents) * int64(it.Quantity)

			itemsDB = append(itemsDB, models.OrderItem{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				PriceCents: p.PriceCents, // снимок цены продукта
				CreatedAt:  now,
			})
			itemToppings = append(itemToppings, toppingsDB)
		}

		order = &models.Order{
			UserID:         userID,
			AddressID:      in.AddressID,
			DeliveryType:   deliveryType,
			Status:         models.OrderStatusPending,
			TotalCents:     total,
			CourierComment: in.CourierComment,
			DeliveryTime:   in.DeliveryTime,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := or.Create(ctx, order); err != nil {
			return err
		}

		for i := range itemsDB {
			itemsDB[i].OrderID = order.ID
		}
		if err := ir.BulkCreate(ctx, itemsDB); err != nil {
			return err
		}

		var allToppings []models.OrderItemTopping
		for i, ts := range itemToppings {
			for j := range ts {
				ts[j].OrderItemID = itemsDB[i].ID
			}
			allToppings = append(allToppings, ts...)
		}
		if err := tr.BulkCreate(ctx, allToppings); err != nil {
			return err
		}

		ordWith, err := or.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		order = ordWith
		return nil
	})
	if err != nil {
		switch terr := repository.TranslateError(err); {
		case errors.Is(terr, repository.ErrForeignKey):
			return nil, ErrProductNotFound
		case errors.Is(terr, repository.ErrDuplicate):
			return nil, ErrDuplicateItems
		}
		return nil, err
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				PriceCents: it.PriceCents,
			})
		}
		if err := s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:      order.ID,
			UserID:       order.UserID,
			DeliveryType: order.DeliveryType,
			Items:        evItems,
			TotalCents:   order.TotalCents,
			CreatedAt:    order.CreatedAt,
		}); err != nil {
			s.log.Warn("Не удалось опубликовать событие о создании заказа",
				zap.Uint("order_id", order.ID), zap.Error(err))
		}
	}

	read := schema.ToOrderRead(order)
	return &read, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*schema.OrderRead, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	var ord *models.Order
	if role == models.RoleAdministrator {
		ord, err = s.repo.Orders.GetByID(ctx, id)
	} else {
		ord, err = s.repo.Orders.GetByIDForUser(ctx, id, userID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	read := schema.ToOrderRead(ord)
	return &read, nil
}

func (s *OrderService) ListOrders(ctx context.Context, f ListOrdersFilter) ([]schema.OrderRead, int64, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	if role != models.RoleAdministrator {
		f.UserID = &userID
	}

	list, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		UserID: f.UserID,
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]schema.OrderRead, 0, len(list))
	for _, o := range list {
		out = append(out, schema.ToOrderRead(o))
	}
	return out, total, nil
}

// UpdateStatus меняет статус заказа с проверкой допустимого перехода.
// Менять статусы может только администратор, кроме отмены своего заказа.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, to models.OrderStatus) (*schema.OrderRead, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	isAdmin := role == models.RoleAdministrator

	var ord *models.Order
	if isAdmin {
		ord, err = s.repo.Orders.GetByID(ctx, id)
	} else {
		ord, err = s.repo.Orders.GetByIDForUser(ctx, id, userID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	// Заказчику доступна только отмена собственного заказа.
	if !isAdmin && to != models.OrderStatusCancelled {
		return nil, ErrForbidden
	}

	if ord.Status == models.OrderStatusCancelled && to == models.OrderStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if !transitionAllowed(ord.Status, to) {
		return nil, ErrStatusTransition
	}

	if err := s.repo.Orders.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}

	ord, err = s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if to == models.OrderStatusCancelled && s.events != nil {
		if err := s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     ord.ID,
			UserID:      ord.UserID,
			CancelledAt: s.now(),
		}); err != nil {
			s.log.Warn("Не удалось опубликовать событие об отмене заказа",
				zap.Uint("order_id", ord.ID), zap.Error(err))
		}
	}

	read := schema.ToOrderRead(ord)
	return &read, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id uint) (*schema.OrderRead, error) {
	return s.UpdateStatus(ctx, id, models.OrderStatusCancelled)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	_, role, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if role != models.RoleAdministrator {
		return ErrForbidden
	}

	ok, err := s.repo.Orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

// RecordPayment фиксирует платёж по заказу. Один платёж на заказ — уникальный
// индекс по order_id в БД страхует от гонки двойной оплаты.
func (s *OrderService) RecordPayment(ctx context.Context, orderID uint, in RecordPaymentInput) (*schema.PaymentRead, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	var ord *models.Order
	if role == models.RoleAdministrator {
		ord, err = s.repo.Orders.GetByID(ctx, orderID)
	} else {
		ord, err = s.repo.Orders.GetByIDForUser(ctx, orderID, userID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if ord.Payment != nil {
		return nil, ErrPaymentExists
	}
	if in.AmountCents != ord.TotalCents {
		return nil, ErrPaymentAmount
	}

	p := &models.Payment{
		UserID:      ord.UserID,
		OrderID:     ord.ID,
		AmountCents: in.AmountCents,
		Status:      models.PaymentStatusPending,
	}

	if err := s.repo.Payments.Create(ctx, p); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrDuplicate) {
			return nil, ErrPaymentExists
		}
		return nil, err
	}

	read := schema.ToPaymentRead(p)
	return &read, nil
}
