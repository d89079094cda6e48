package handlers

import (
	"net/http"
	"strconv"

	"github.com/cl7paBka/goar-tomsk-web/internal/dto"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создаёт нового пользователя с ролью customer
// @Tags users
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Данные регистрации"
// @Success 200 {object} service.RegisterResult "Успешная регистрация"
// @Failure 409 {object} dto.ConflictErrorResponse "Телефон или email заняты"
// @Failure 422 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	result, err := h.users.Register(c.Request.Context(), service.RegisterUserInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Login godoc
// @Summary Авторизация пользователя
// @Description Не реализовано: выпуск токенов делает отдельный сервис
// @Tags users
// @Produce json
// @Failure 501 {object} dto.NotImplementedErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	respondError(c, h.log, h.users.Login(c.Request.Context()))
}

// Me godoc
// @Summary Текущий пользователь
// @Tags users
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Success 200 {object} schema.UserRead
// @Failure 401 {object} dto.UnauthorizedErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetMe(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Обновление текущего пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Param update body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} schema.UserRead
// @Failure 409 {object} dto.ConflictErrorResponse "Телефон или email заняты"
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	user, err := h.users.UpdateMe(c.Request.Context(), service.UpdateUserInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe godoc
// @Summary Удаление текущего пользователя
// @Description Каскадно удаляет адреса и заказы пользователя
// @Tags users
// @Param X-User-ID header int true "Идентификатор пользователя"
// @Success 204
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.users.DeleteMe(c.Request.Context()); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListAddresses(c *gin.Context) {
	list, err := h.users.ListAddresses(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) AddAddress(c *gin.Context) {
	var req dto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	addr, err := h.users.AddAddress(c.Request.Context(), service.CreateAddressInput{
		Street:         req.Street,
		Intercom:       req.Intercom,
		Floor:          req.Floor,
		Apartment:      req.Apartment,
		IsPrivateHouse: req.IsPrivateHouse,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, addr)
}

func (h *UserHandler) DeleteAddress(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		bindError(c, h.log, err)
		return
	}
	if err := h.users.DeleteAddress(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}
