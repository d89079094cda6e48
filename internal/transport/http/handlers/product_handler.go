package handlers

import (
	"net/http"
	"strconv"

	"github.com/cl7paBka/goar-tomsk-web/internal/dto"
	"github.com/cl7paBka/goar-tomsk-web/internal/repository"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewProductHandler(catalog *service.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

type productListResponse struct {
	Items []any `json:"items"`
	Total int64 `json:"total"`
}

// List godoc
// @Summary Список продуктов
// @Tags products
// @Produce json
// @Param subcategory_id query int false "Фильтр по категории"
// @Param q query string false "Поиск по названию и описанию"
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Param offset query int false "Смещение"
// @Success 200 {object} productListResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var f repository.ProductListFilter

	if raw := c.Query("subcategory_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			v := uint(id)
			f.SubcategoryID = &v
		}
	}
	f.Query = c.Query("q")
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, total, err := h.catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": list, "total": total})
}

// Get godoc
// @Summary Продукт по идентификатору
// @Tags products
// @Produce json
// @Param id path int true "Идентификатор продукта"
// @Success 200 {object} schema.ProductRead
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	p, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create godoc
// @Summary Создание продукта
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Продукт"
// @Success 201 {object} schema.ProductRead
// @Failure 404 {object} dto.NotFoundErrorResponse "Категория не найдена"
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	p, err := h.catalog.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:          req.Name,
		SubcategoryID: req.SubcategoryID,
		PriceCents:    req.PriceCents,
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update godoc
// @Summary Обновление продукта
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор продукта"
// @Param product body dto.UpdateProductRequest true "Изменяемые поля"
// @Success 200 {object} schema.ProductRead
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), id, service.UpdateProductInput{
		Name:          req.Name,
		SubcategoryID: req.SubcategoryID,
		PriceCents:    req.PriceCents,
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete godoc
// @Summary Удаление продукта
// @Tags products
// @Param id path int true "Идентификатор продукта"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachTopping godoc
// @Summary Привязка топпинга к продукту
// @Tags products
// @Param id path int true "Идентификатор продукта"
// @Param topping_id path int true "Идентификатор топпинга"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /products/{id}/toppings/{topping_id} [post]
func (h *ProductHandler) AttachTopping(c *gin.Context) {
	productID, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	toppingID, err := parseID(c, "topping_id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.catalog.AttachTopping(c.Request.Context(), productID, toppingID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DetachTopping godoc
// @Summary Отвязка топпинга от продукта
// @Tags products
// @Param id path int true "Идентификатор продукта"
// @Param topping_id path int true "Идентификатор топпинга"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /products/{id}/toppings/{topping_id} [delete]
func (h *ProductHandler) DetachTopping(c *gin.Context) {
	productID, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	toppingID, err := parseID(c, "topping_id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.catalog.DetachTopping(c.Request.Context(), productID, toppingID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
