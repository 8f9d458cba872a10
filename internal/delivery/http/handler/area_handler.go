package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/utils"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

// AreaHandler - справочники районов и типов обращений
type AreaHandler struct {
	areaUC         *usecase.AreaUseCase
	incidentTypeUC *usecase.IncidentTypeUseCase
	logger         *zap.Logger
}

// NewAreaHandler - создание нового AreaHandler
func NewAreaHandler(areaUC *usecase.AreaUseCase, incidentTypeUC *usecase.IncidentTypeUseCase, logger *zap.Logger) *AreaHandler {
	return &AreaHandler{
		areaUC:         areaUC,
		incidentTypeUC: incidentTypeUC,
		logger:         logger,
	}
}

// CreateArea godoc
// @Summary Создание района
// @Description location - GeoJSON точка, coordinates: [lon, lat]
// @Tags Reference
// @Accept json
// @Produce json
// @Param request body dto.CreateAreaRequest true "Район"
// @Success 200 {object} map[string]interface{} "message, area_id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /areas [post]
func (h *AreaHandler) CreateArea(c *fiber.Ctx) error {
	var req dto.CreateAreaRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.CreateArea(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}

// CreateIncidentType godoc
// @Summary Создание типа обращения
// @Tags Reference
// @Accept json
// @Produce json
// @Param request body dto.CreateIncidentTypeRequest true "Тип обращения"
// @Success 200 {object} map[string]interface{} "message, incident_type_id"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /incident-types [post]
func (h *AreaHandler) CreateIncidentType(c *fiber.Ctx) error {
	var req dto.CreateIncidentTypeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.incidentTypeUC.CreateIncidentType(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}
