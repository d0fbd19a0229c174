package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "JWT_SECRET", "ADMIN_USERNAME", "REDIS_ADDR", "SEED_DEMO", "SMTP_HOST", "SMTP_PORT", "SMTP_FROM", "REPORT_AT"} {
		t.Setenv(key, "")
	}

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8002", s.Port)
	assert.Equal(t, "admin", s.AdminUsername)
	assert.Equal(t, 587, s.SMTPPort)
	assert.Equal(t, uint(23), s.ReportHour)
	assert.Equal(t, uint(55), s.ReportMinute)
	assert.False(t, s.IsProduction())
	assert.False(t, s.SMTPEnabled())
	assert.False(t, s.SeedDemo)
}

func TestLoad_GeneratesSecretOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")

	first, err := Load()
	require.NoError(t, err)
	assert.True(t, first.JWTSecretGenerated)
	assert.Len(t, first.JWTSecret, 64)

	second, err := Load()
	require.NoError(t, err)
	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)

	t.Setenv("JWT_SECRET", "from-env")
	configured, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", configured.JWTSecret)
	assert.False(t, configured.JWTSecretGenerated)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REPORT_AT", "06:30")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "box-office@example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SEED_DEMO", "true")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, uint(6), s.ReportHour)
	assert.Equal(t, uint(30), s.ReportMinute)
	assert.Equal(t, 2525, s.SMTPPort)
	assert.True(t, s.SMTPEnabled())
	assert.True(t, s.SeedDemo)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad smtp port", env: map[string]string{"SMTP_PORT": "abc"}},
		{name: "bad report clock", env: map[string]string{"REPORT_AT": "25:00"}},
		{name: "report clock without minutes", env: map[string]string{"REPORT_AT": "7"}},
		{name: "production without secret", env: map[string]string{"APP_ENV": "production", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SMTP_PORT", "")
			t.Setenv("REPORT_AT", "")
			t.Setenv("APP_ENV", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
