package router

import (
	"cinema_ticket/handler"
	"cinema_ticket/middleware"
	"cinema_ticket/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, secret []byte) {
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")
	protected := middleware.Protected(secret)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", protected, h.Me)

	movie := v1.Group("/movie")
	movie.Get("/", h.GetMovies)
	movie.Get("/:title", h.GetMovie)
	movie.Post("/", protected, validate.CreateMovie(), h.CreateMovie)
	movie.Post("/:title/review", validate.CreateReview(), h.AddReview)

	seats := v1.Group("/seats")
	seats.Get("/", h.GetAvailableSeats)
	seats.Use("/ws", h.WebSocketUpgrade)
	seats.Get("/ws", websocket.New(h.WebSocketConnection))

	ticket := v1.Group("/ticket")
	ticket.Post("/", validate.SellTicket(), h.SellTicket)
	ticket.Get("/:ticketId", h.GetTicketById)
	ticket.Get("/:ticketId/qrcode", h.GetTicketQRCode)
	ticket.Patch("/:ticketId/use", protected, h.UseTicket)
	ticket.Post("/:ticketId/refund", protected, h.RefundTicket)

	report := v1.Group("/report", protected)
	report.Get("/revenue", h.RevenueReport)
}
