package validate

import (
	"cinema_ticket/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return bodyInput[model.LoginInput]()
}
