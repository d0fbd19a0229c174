package main

import (
	"context"
	"log"
	"time"

	"cinema_ticket/config"
	"cinema_ticket/constants"
	"cinema_ticket/database"
	"cinema_ticket/handler"
	"cinema_ticket/helper"
	"cinema_ticket/manager"
	"cinema_ticket/router"
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := utils.NewLogger(settings.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	if settings.JWTSecretGenerated {
		logger.Warn("JWT_SECRET is empty, using a random secret for this run")
	}

	cinema := manager.NewCinemaManager(logger.Named("cinema"))
	if settings.SeedDemo {
		database.SeedMovies(cinema)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := handler.NewHub()
	var notifier handler.SeatNotifier = handler.HubNotifier{Hub: hub}
	if settings.RedisAddr != "" {
		client, err := database.ConnectRedis(ctx, settings.RedisAddr)
		if err != nil {
			logger.Fatal("redis unavailable", zap.Error(err))
		}
		defer client.Close()

		notifier = handler.RedisSeatNotifier{Client: client, Channel: constants.SEAT_CHANNEL}
		go func() {
			if err := handler.RelaySeatUpdates(ctx, client, constants.SEAT_CHANNEL, hub, logger); err != nil && ctx.Err() == nil {
				logger.Error("seat relay stopped", zap.Error(err))
			}
		}()
	}

	var mailer handler.TicketMailer
	if settings.SMTPEnabled() {
		mailer = utils.NewMailer(utils.SMTPConfig{
			Host:     settings.SMTPHost,
			Port:     settings.SMTPPort,
			Username: settings.SMTPUsername,
			Password: settings.SMTPPassword,
			From:     settings.SMTPFrom,
		})
	}

	var adminPasswordHash string
	if settings.AdminPassword != "" {
		adminPasswordHash, err = helper.HashPassword(settings.AdminPassword)
		if err != nil {
			logger.Fatal("hash admin password failed", zap.Error(err))
		}
	} else {
		logger.Warn("ADMIN_PASSWORD is empty, admin login disabled")
	}

	scheduler, err := helper.StartRevenueReportScheduler(cinema, logger.Named("report"), settings.ReportHour, settings.ReportMinute, time.Local)
	if err != nil {
		logger.Fatal("start report scheduler failed", zap.Error(err))
	}
	defer scheduler.Shutdown()

	h := handler.NewHandler(handler.Options{
		Cinema:            cinema,
		Log:               logger.Named("http"),
		Mailer:            mailer,
		Notifier:          notifier,
		Hub:               hub,
		JWTSecret:         []byte(settings.JWTSecret),
		AdminUsername:     settings.AdminUsername,
		AdminPasswordHash: adminPasswordHash,
	})

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app, h, []byte(settings.JWTSecret))

	logger.Info("server starting", zap.String("port", settings.Port), zap.String("env", settings.AppEnv))
	if err := app.Listen(":" + settings.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
