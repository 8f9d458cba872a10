package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendAck отправляет подтверждение создания: {"message": ..., "<key>": id}
func SendAck(c *fiber.Ctx, ack interface{}) error {
	return c.Status(fiber.StatusOK).JSON(ack)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
