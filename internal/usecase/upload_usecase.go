package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// MinImageSize - всё, что меньше, считается пустой или битой картинкой
	MinImageSize = 1000

	msgImageUploaded = "Image uploaded successfully"
	msgImageTooSmall = "Image too small or empty"
	uploadPathPrefix = "/uploads/"
	imageNamePrefix  = "incident-"
)

// AllowedImageTypes - типы, определяемые по содержимому файла
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// UploadUseCase - приём изображений для вложений обращений
type UploadUseCase struct {
	storage repository.FileStorage
	baseURL string
	maxSize int64
	newName func() string
	logger  *zap.Logger
}

// NewUploadUseCase - baseURL задаёт начало публичной ссылки, maxSize - предел размера в байтах
func NewUploadUseCase(storage repository.FileStorage, baseURL string, maxSize int64, logger *zap.Logger) *UploadUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadUseCase{
		storage: storage,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
		newName: func() string { return imageNamePrefix + uuid.NewString() },
		logger:  logger,
	}
}

// MaxSize - предел размера файла
func (uc *UploadUseCase) MaxSize() int64 {
	return uc.maxSize
}

// UploadImage проверяет тип по содержимому, затем размер, и сохраняет файл под новым именем
func (uc *UploadUseCase) UploadImage(ctx context.Context, in dto.UploadImageInput) (*dto.UploadedImage, error) {
	detected := mimetype.Detect(in.Data)
	if !mimetype.EqualsAny(detected.String(), AllowedImageTypes...) {
		return nil, errors.NewValidation(
			"Invalid type. Allowed: " + strings.Join(AllowedImageTypes, ", "),
		).WithDetails(map[string]interface{}{"file": detected.String()})
	}

	size := int64(len(in.Data))
	if size > uc.maxSize {
		return nil, errors.NewValidation(
			fmt.Sprintf("File exceeds %s", formatSize(uc.maxSize)),
		).WithDetails(map[string]interface{}{"file": fmt.Sprintf("max=%d", uc.maxSize)})
	}
	if size < MinImageSize {
		return nil, errors.NewValidation(msgImageTooSmall).
			WithDetails(map[string]interface{}{"file": fmt.Sprintf("min=%d", MinImageSize)})
	}

	// Расширение берём из содержимого, а не из имени, присланного клиентом
	filename := uc.newName() + detected.Extension()
	if err := uc.storage.Save(ctx, filename, in.Data); err != nil {
		uc.logger.Error("Failed to save uploaded image",
			zap.String("filename", filename),
			zap.String("original", in.Filename),
			zap.Error(err),
		)
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("Image uploaded",
		zap.String("filename", filename),
		zap.String("original", in.Filename),
		zap.String("mime_type", detected.String()),
		zap.Int64("size", size),
	)

	return &dto.UploadedImage{
		Message:  msgImageUploaded,
		URL:      uc.baseURL + uploadPathPrefix + filename,
		Filename: filename,
		Size:     len(in.Data),
		MimeType: detected.String(),
	}, nil
}

func formatSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes%mb == 0 {
		return fmt.Sprintf("%dMB", bytes/mb)
	}
	return fmt.Sprintf("%d bytes", bytes)
}
