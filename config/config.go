package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Config đọc biến môi trường, nạp .env (nếu có) ở lần gọi đầu tiên
func Config(key string) string {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load(".env")
	})
	return os.Getenv(key)
}

type Settings struct {
	Port          string
	AppEnv        string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	RedisAddr     string
	SeedDemo      bool
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
	ReportHour    uint
	ReportMinute  uint

	// JWT_SECRET trống ngoài production: secret ngẫu nhiên cho mỗi lần chạy
	JWTSecretGenerated bool
}

func (s Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

func (s Settings) SMTPEnabled() bool {
	return s.SMTPHost != "" && s.SMTPFrom != ""
}

func Load() (Settings, error) {
	s := Settings{
		Port:          valueOr("PORT", "8002"),
		AppEnv:        valueOr("APP_ENV", "development"),
		JWTSecret:     Config("JWT_SECRET"),
		AdminUsername: valueOr("ADMIN_USERNAME", "admin"),
		AdminPassword: Config("ADMIN_PASSWORD"),
		RedisAddr:     Config("REDIS_ADDR"),
		SeedDemo:      Config("SEED_DEMO") == "true",
		SMTPHost:      Config("SMTP_HOST"),
		SMTPUsername:  Config("SMTP_USERNAME"),
		SMTPPassword:  Config("SMTP_PASSWORD"),
		SMTPFrom:      Config("SMTP_FROM"),
	}

	port, err := strconv.Atoi(valueOr("SMTP_PORT", "587"))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse SMTP_PORT: %w", err)
	}
	s.SMTPPort = port

	s.ReportHour, s.ReportMinute, err = parseClock(valueOr("REPORT_AT", "23:55"))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse REPORT_AT: %w", err)
	}

	if s.JWTSecret == "" {
		if s.IsProduction() {
			return Settings{}, fmt.Errorf("JWT_SECRET is required in production")
		}
		secret, err := randomSecret()
		if err != nil {
			return Settings{}, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		s.JWTSecret = secret
		s.JWTSecretGenerated = true
	}
	return s, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func valueOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// parseClock nhận "HH:MM"
func parseClock(value string) (uint, uint, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	hour, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return uint(hour), uint(minute), nil
}
