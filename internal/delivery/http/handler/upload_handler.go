package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/pkg/utils"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

// UploadFormField - поле multipart-формы с файлом
const UploadFormField = "file"

// UploadHandler - загрузка изображений для вложений
type UploadHandler struct {
	uploadUC *usecase.UploadUseCase
	logger   *zap.Logger
}

// NewUploadHandler - создание нового UploadHandler
func NewUploadHandler(uploadUC *usecase.UploadUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

// UploadImage godoc
// @Summary Загрузка изображения
// @Description JPEG, PNG, WebP или GIF от 1000 байт до MAX_FILE_SIZE. Возвращает ссылку для POST /incident-media
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Изображение"
// @Success 200 {object} dto.UploadedImage
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /uploads/images [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.
			WithMessage("No file uploaded").
			WithDetails(map[string]interface{}{UploadFormField: "required"}))
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.Warn("Failed to open uploaded file", zap.String("filename", fh.Filename), zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			UploadFormField: err.Error(),
		}))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			UploadFormField: err.Error(),
		}))
	}

	result, err := h.uploadUC.UploadImage(c.Context(), dto.UploadImageInput{
		Filename: fh.Filename,
		Data:     data,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAck(c, result)
}
