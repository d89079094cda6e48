package handlers

import (
	"errors"
	"net/http"

	"github.com/cl7paBka/goar-tomsk-web/internal/dto"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError переводит ошибки сервисного слоя в HTTP-статусы:
// 409 — конфликт уникальности, 404 — не найдено, 422 — нарушение правил
// предметной области, 500 — всё остальное.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing or invalid identity"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("operation not allowed"))
	case errors.Is(err, service.ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, dto.NewNotImplementedError("not implemented"))
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrPaymentExists):
		c.JSON(http.StatusConflict, dto.NewConflictError(err.Error()))
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrAddressNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrToppingNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrDuplicateItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrAddressRequired),
		errors.Is(err, service.ErrToppingNotAllowed),
		errors.Is(err, service.ErrCategoryCycle),
		errors.Is(err, service.ErrStatusTransition),
		errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrPaymentAmount):
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationError(err.Error(), nil))
	default:
		log.Error("Внутренняя ошибка обработки запроса", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}

func bindError(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("Некорректное тело запроса", zap.Error(err))
	c.JSON(http.StatusUnprocessableEntity, dto.NewValidationError("invalid request body", nil))
}
