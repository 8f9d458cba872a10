package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/incident-intake/internal/pkg/errors"
)

// parseBody разбирает JSON тело; синтаксическая ошибка или неверный тип поля дают 422
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		})
	}
	return nil
}
