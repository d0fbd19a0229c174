package validate

import (
	"cinema_ticket/model"

	"github.com/gofiber/fiber/v2"
)

func SellTicket() fiber.Handler {
	return bodyInput[model.SellTicketInput]()
}
