package handlers

import (
	"net/http"
	"strconv"

	"github.com/cl7paBka/goar-tomsk-web/internal/dto"
	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders *service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Create godoc
// @Summary Создание заказа
// @Description Позиции получают снимок текущих цен продуктов и топпингов
// @Tags orders
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param order body dto.CreateOrderRequest true "Заказ"
// @Success 201 {object} schema.OrderRead
// @Failure 401 {object} dto.UnauthorizedErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse "Продукт или адрес не найдены"
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	items := make([]service.CreateOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CreateOrderItemInput{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			ToppingIDs: it.ToppingIDs,
		})
	}

	ord, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		AddressID:      req.AddressID,
		DeliveryType:   models.DeliveryType(req.DeliveryType),
		CourierComment: req.CourierComment,
		DeliveryTime:   req.DeliveryTime,
		Items:          items,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, ord)
}

// List godoc
// @Summary Список заказов
// @Description Заказчик видит только свои заказы, администратор — все
// @Tags orders
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param status query string false "Фильтр по статусу"
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var f service.ListOrdersFilter

	if raw := c.Query("status"); raw != "" {
		st := models.OrderStatus(raw)
		f.Status = &st
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, total, err := h.orders.ListOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list, "total": total})
}

// Get godoc
// @Summary Заказ по идентификатору
// @Tags orders
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param id path int true "Идентификатор заказа"
// @Success 200 {object} schema.OrderRead
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	ord, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// UpdateStatus godoc
// @Summary Смена статуса заказа
// @Description Переход проверяется по матрице допустимых статусов
// @Tags orders
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param id path int true "Идентификатор заказа"
// @Param status body dto.UpdateOrderStatusRequest true "Новый статус"
// @Success 200 {object} schema.OrderRead
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse "Недопустимый переход"
// @Router /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	ord, err := h.orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// Delete godoc
// @Summary Удаление заказа
// @Description Доступно только администратору
// @Tags orders
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param id path int true "Идентификатор заказа"
// @Success 204
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordPayment godoc
// @Summary Фиксация платежа по заказу
// @Description Один платёж на заказ; сумма должна совпадать с итогом заказа
// @Tags orders
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param id path int true "Идентификатор заказа"
// @Param payment body dto.RecordPaymentRequest true "Платёж"
// @Success 201 {object} schema.PaymentRead
// @Failure 409 {object} dto.ConflictErrorResponse "Платёж уже существует"
// @Failure 422 {object} dto.ValidationErrorResponse "Сумма не совпадает"
// @Router /orders/{id}/payment [post]
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	p, err := h.orders.RecordPayment(c.Request.Context(), id, service.RecordPaymentInput{
		AmountCents: req.AmountCents,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
