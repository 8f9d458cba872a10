package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/utils"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

// UserHandler - регистрация пользователей и закрепление за районами
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// CreateUser godoc
// @Summary Создание пользователя
// @Description Идентификатор передаётся клиентом. Email уникален, is_active по умолчанию true.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Пользователь"
// @Success 200 {object} map[string]interface{} "message, user_id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.userUC.CreateUser(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// AssignUserToArea godoc
// @Summary Закрепление пользователя за районом
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserAreaRequest true "Пара пользователь/район"
// @Success 200 {object} map[string]interface{} "message, id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /user-areas [post]
func (h *UserHandler) AssignUserToArea(c *fiber.Ctx) error {
	var req dto.CreateUserAreaRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.userUC.AssignUserToArea(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}
