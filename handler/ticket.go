package handler

import (
	"cinema_ticket/constants"
	"cinema_ticket/model"
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const qrCodeSize = 256

func (h *Handler) SellTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SellTicketInput)

	resp, err := h.cinema.SellTicketSnapshot(input.MovieTitle, input.SeatNumber, input.Showtime, input.CustomerName)
	if err != nil {
		return cinemaErrorResponse(c, err)
	}

	h.broadcastSeats(c.UserContext())
	if input.Email != "" && h.mailer != nil {
		go h.sendConfirmation(input.Email, resp)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, resp)
}

func (h *Handler) sendConfirmation(to string, ticket model.TicketResponse) {
	data := utils.TicketConfirmationData{
		TicketID:     ticket.TicketID,
		CustomerName: ticket.CustomerName,
		MovieName:    ticket.MovieTitle,
		Showtime:     ticket.Showtime,
		Seat:         ticket.SeatNumber,
		Price:        ticket.Price.StringFixed(2),
	}
	if err := h.mailer.SendTicketConfirmation(to, data); err != nil {
		h.log.Error("send ticket confirmation failed", zap.String("ticketId", ticket.TicketID), zap.Error(err))
		return
	}
	h.log.Info("ticket confirmation sent", zap.String("ticketId", ticket.TicketID))
}

func (h *Handler) GetTicketById(c *fiber.Ctx) error {
	ticket, err := h.cinema.TicketSnapshot(c.Params("ticketId"))
	if err != nil {
		return cinemaErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func (h *Handler) GetTicketQRCode(c *fiber.Ctx) error {
	ticket, err := h.cinema.TicketSnapshot(c.Params("ticketId"))
	if err != nil {
		return cinemaErrorResponse(c, err)
	}

	png, err := utils.GenerateTicketQRCode(ticket.TicketID, qrCodeSize)
	if err != nil {
		h.log.Error("generate qr code failed", zap.String("ticketId", ticket.TicketID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(png)
}

func (h *Handler) UseTicket(c *fiber.Ctx) error {
	ticketID := c.Params("ticketId")
	if _, err := h.cinema.UseTicket(ticketID); err != nil {
		return cinemaErrorResponse(c, err)
	}

	ticket, err := h.cinema.TicketSnapshot(ticketID)
	if err != nil {
		return cinemaErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.TICKET_USED_SUCCESS,
		"ticket":  ticket,
	})
}

func (h *Handler) RefundTicket(c *fiber.Ctx) error {
	ticketID := c.Params("ticketId")
	if err := h.cinema.RefundTicket(ticketID); err != nil {
		return cinemaErrorResponse(c, err)
	}

	h.broadcastSeats(c.UserContext())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":  constants.TICKET_REFUND_SUCCESS,
		"ticketId": ticketID,
	})
}
