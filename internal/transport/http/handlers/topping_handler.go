package handlers

import (
	"net/http"

	"github.com/cl7paBka/goar-tomsk-web/internal/dto"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ToppingHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewToppingHandler(catalog *service.CatalogService, log *zap.Logger) *ToppingHandler {
	return &ToppingHandler{catalog: catalog, log: log}
}

func (h *ToppingHandler) List(c *gin.Context) {
	list, err := h.catalog.ListToppings(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ToppingHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	t, err := h.catalog.GetTopping(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ToppingHandler) Create(c *gin.Context) {
	var req dto.CreateToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	t, err := h.catalog.CreateTopping(c.Request.Context(), service.CreateToppingInput{
		Name:       req.Name,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *ToppingHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}

	var req dto.UpdateToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	t, err := h.catalog.UpdateTopping(c.Request.Context(), id, service.UpdateToppingInput{
		Name:       req.Name,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ToppingHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.catalog.DeleteTopping(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
