package handlers

import (
	"net/http"

	"github.com/cl7paBka/goar-tomsk-web/internal/dto"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewCategoryHandler(catalog *service.CatalogService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{catalog: catalog, log: log}
}

// List godoc
// @Summary Дерево категорий
// @Description Возвращает корневые категории с вложенными подкатегориями и продуктами
// @Tags categories
// @Produce json
// @Success 200 {array} schema.CategoryRead
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Категория по идентификатору
// @Tags categories
// @Produce json
// @Param id path int true "Идентификатор категории"
// @Success 200 {object} schema.CategoryRead
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	cat, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Create godoc
// @Summary Создание категории
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Категория"
// @Success 201 {object} schema.CategoryRead
// @Failure 404 {object} dto.NotFoundErrorResponse "Родительская категория не найдена"
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	cat, err := h.catalog.CreateCategory(c.Request.Context(), service.CreateCategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// Update godoc
// @Summary Обновление категории
// @Description Смена родителя проверяется на цикл в дереве
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор категории"
// @Param category body dto.UpdateCategoryRequest true "Изменяемые поля"
// @Success 200 {object} schema.CategoryRead
// @Failure 422 {object} dto.ValidationErrorResponse "Родитель образует цикл"
// @Router /categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	cat, err := h.catalog.UpdateCategory(c.Request.Context(), id, service.UpdateCategoryInput{
		Name:        req.Name,
		ParentID:    req.ParentID,
		ClearParent: req.ClearParent,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete godoc
// @Summary Удаление категории
// @Description Каскадно удаляет подкатегории и их продукты
// @Tags categories
// @Param id path int true "Идентификатор категории"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
