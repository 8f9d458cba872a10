package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/utils"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

// NotificationHandler - оповещения и контакты поддержки
type NotificationHandler struct {
	alertUC          *usecase.AlertUseCase
	supportContactUC *usecase.SupportContactUseCase
	logger           *zap.Logger
}

// NewNotificationHandler - создание нового NotificationHandler
func NewNotificationHandler(
	alertUC *usecase.AlertUseCase,
	supportContactUC *usecase.SupportContactUseCase,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		alertUC:          alertUC,
		supportContactUC: supportContactUC,
		logger:           logger,
	}
}

// CreateAlert godoc
// @Summary Создание оповещения
// @Description end_at должен быть строго больше start_at
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateAlertRequest true "Оповещение"
// @Success 200 {object} map[string]interface{} "message, alert_id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /alerts [post]
func (h *NotificationHandler) CreateAlert(c *fiber.Ctx) error {
	var req dto.CreateAlertRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.alertUC.CreateAlert(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// CreateSupportContact godoc
// @Summary Создание контакта поддержки
// @Description Идентификатор выдаётся последовательно, начиная с 1
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateSupportContactRequest true "Контакт"
// @Success 200 {object} map[string]interface{} "message, id"
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /support-contacts [post]
func (h *NotificationHandler) CreateSupportContact(c *fiber.Ctx) error {
	var req dto.CreateSupportContactRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.supportContactUC.CreateSupportContact(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}
