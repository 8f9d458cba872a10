package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/utils"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

// IncidentHandler - обращения и связанные записи
type IncidentHandler struct {
	incidentUC *usecase.IncidentUseCase
	logger     *zap.Logger
}

// NewIncidentHandler - создание нового IncidentHandler
func NewIncidentHandler(incidentUC *usecase.IncidentUseCase, logger *zap.Logger) *IncidentHandler {
	return &IncidentHandler{
		incidentUC: incidentUC,
		logger:     logger,
	}
}

// CreateIncident godoc
// @Summary Создание обращения
// @Description Проверяет тип, автора и район (в этом порядке), затем уникальность _id
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentRequest true "Обращение"
// @Success 200 {object} map[string]interface{} "message, incident_id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /incidents [post]
func (h *IncidentHandler) CreateIncident(c *fiber.Ctx) error {
	var req dto.CreateIncidentRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.incidentUC.CreateIncident(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// CreateHistory godoc
// @Summary Запись в историю обращения
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentHistoryRequest true "Запись истории"
// @Success 200 {object} map[string]interface{} "message, history_id"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /incident-history [post]
func (h *IncidentHandler) CreateHistory(c *fiber.Ctx) error {
	var req dto.CreateIncidentHistoryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.incidentUC.CreateHistory(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// CreateMedia godoc
// @Summary Вложение к обращению
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentMediaRequest true "Вложение"
// @Success 200 {object} map[string]interface{} "message, media_id"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /incident-media [post]
func (h *IncidentHandler) CreateMedia(c *fiber.Ctx) error {
	var req dto.CreateIncidentMediaRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.incidentUC.CreateMedia(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// CreateAssignment godoc
// @Summary Назначение обращения исполнителю
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentAssignmentRequest true "Назначение"
// @Success 200 {object} map[string]interface{} "message, assignment_id"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /incident-assignments [post]
func (h *IncidentHandler) CreateAssignment(c *fiber.Ctx) error {
	var req dto.CreateIncidentAssignmentRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.incidentUC.CreateAssignment(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// CreateVote godoc
// @Summary Голос за достоверность обращения
// @Description Один голос на пару (incident_id, user_id)
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentVoteRequest true "Голос"
// @Success 200 {object} map[string]interface{} "message, vote_id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /incident-votes [post]
func (h *IncidentHandler) CreateVote(c *fiber.Ctx) error {
	var req dto.CreateIncidentVoteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.incidentUC.CreateVote(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}
