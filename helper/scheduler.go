package helper

import (
	"cinema_ticket/manager"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// LogRevenueSnapshot ghi lại báo cáo doanh thu hiện tại
func LogRevenueSnapshot(cinema *manager.CinemaManager, log *zap.Logger) {
	report := cinema.RevenueReport()

	fields := []zap.Field{
		zap.String("totalRevenue", report.TotalRevenue.StringFixed(2)),
		zap.Int("totalTickets", report.TotalTickets),
		zap.Int("availableSeats", len(cinema.GetAvailableSeats())),
	}
	for _, item := range report.TicketsByMovie {
		fields = append(fields, zap.Int("tickets."+item.Title, item.Tickets))
	}
	log.Info("[CRON] revenue snapshot", fields...)
}

func StartRevenueReportScheduler(cinema *manager.CinemaManager, log *zap.Logger, hour, minute uint, loc *time.Location) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(hour, minute, 0),
			),
		),
		gocron.NewTask(LogRevenueSnapshot, cinema, log),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	log.Info("revenue report scheduler started", zap.Uint("hour", hour), zap.Uint("minute", minute))
	return s, nil
}
