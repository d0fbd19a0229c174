package handler

import (
	"errors"
	"net/url"

	"cinema_ticket/constants"
	"cinema_ticket/manager"
	"cinema_ticket/model"
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TicketMailer interface {
	SendTicketConfirmation(to string, data utils.TicketConfirmationData) error
}

type Options struct {
	Cinema            *manager.CinemaManager
	Log               *zap.Logger
	Mailer            TicketMailer // nil: không gửi email
	Notifier          SeatNotifier // nil: không broadcast realtime
	Hub               *Hub
	JWTSecret         []byte
	AdminUsername     string
	AdminPasswordHash string
}

type Handler struct {
	cinema            *manager.CinemaManager
	log               *zap.Logger
	mailer            TicketMailer
	notifier          SeatNotifier
	hub               *Hub
	jwtSecret         []byte
	adminUsername     string
	adminPasswordHash string
}

func NewHandler(opts Options) *Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	hub := opts.Hub
	if hub == nil {
		hub = NewHub()
	}
	return &Handler{
		cinema:            opts.Cinema,
		log:               log,
		mailer:            opts.Mailer,
		notifier:          opts.Notifier,
		hub:               hub,
		jwtSecret:         opts.JWTSecret,
		adminUsername:     opts.AdminUsername,
		adminPasswordHash: opts.AdminPasswordHash,
	}
}

func HealthCheck(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"status": "healthy"})
}

// cinemaErrorResponse maps the manager's failure kinds onto HTTP statuses.
func cinemaErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, manager.ErrMovieNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err)
	case errors.Is(err, manager.ErrTicketNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	case errors.Is(err, manager.ErrSeatNotAvailable):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_NOT_AVAILABLE, err)
	case errors.Is(err, manager.ErrRefundUsedTicket):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CANNOT_REFUND_USED, err)
	case errors.Is(err, model.ErrTicketAlreadyUsed):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_ALREADY_USED, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

// pathParam trả về param đã decode (tên phim có khoảng trắng: "The%20Avengers")
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func wantsText(c *fiber.Ctx) bool {
	return c.Query("format") == "text"
}
