package handler

import (
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

// RevenueReport: doanh thu hiện tại, ?format=text trả về bản in giống console
func (h *Handler) RevenueReport(c *fiber.Ctx) error {
	report := h.cinema.RevenueReport()
	if wantsText(c) {
		return utils.TextResponse(c, fiber.StatusOK, report.String())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, report)
}
