package validate

import (
	"cinema_ticket/constants"
	"cinema_ticket/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// bodyInput parse + validate body rồi lưu vào c.Locals("input")
func bodyInput[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
