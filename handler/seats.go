package handler

import (
	"context"
	"time"

	"cinema_ticket/model"
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SeatUpdate là payload gửi cho client websocket khi danh sách ghế thay đổi
type SeatUpdate struct {
	AvailableSeats []string  `json:"availableSeats"`
	Count          int       `json:"count"`
	At             time.Time `json:"at"`
}

func (h *Handler) seatUpdate() SeatUpdate {
	seats := h.cinema.GetAvailableSeats()
	return SeatUpdate{AvailableSeats: seats, Count: len(seats), At: time.Now()}
}

func (h *Handler) GetAvailableSeats(c *fiber.Ctx) error {
	seats := h.cinema.GetAvailableSeats()
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       seats,
		TotalCount: int64(len(seats)),
	})
}

// broadcastSeats gửi trạng thái ghế mới sau khi bán / hoàn vé
func (h *Handler) broadcastSeats(ctx context.Context) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.NotifySeats(ctx, h.seatUpdate()); err != nil {
		h.log.Warn("broadcast seat update failed", zap.Error(err))
	}
}
