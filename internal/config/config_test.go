package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "logs", "api.log"))
}

func TestParse_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, CaptchaProviderTurnstile, cfg.Captcha.Provider)
	assert.Equal(t, MailProviderResend, cfg.Mail.Provider)
	assert.Equal(t, "Agency Website <onboarding@resend.dev>", cfg.Mail.From)
	assert.Equal(t, "https://api.resend.com", cfg.Mail.ResendAPIURL)
	assert.Empty(t, cfg.Mail.To)
	assert.False(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://agency.dev,https://www.agency.dev")
	t.Setenv("CAPTCHA_PROVIDER", " ReCaptcha ")
	t.Setenv("CAPTCHA_MIN_SCORE", "0.5")
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CONTACT_TO_EMAIL", "hello@agency.dev")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://agency.dev", "https://www.agency.dev"}, cfg.AllowedOrigins)
	assert.Equal(t, CaptchaProviderRecaptcha, cfg.Captcha.Provider)
	assert.InDelta(t, 0.5, cfg.Captcha.MinScore, 0.0001)
	assert.Equal(t, MailProviderSMTP, cfg.Mail.Provider)
	assert.Equal(t, 2525, cfg.Mail.SMTPPort)
	assert.Equal(t, "hello@agency.dev", cfg.Mail.To)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}

func TestParse_RejectsUnknownProviders(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"captcha provider", "CAPTCHA_PROVIDER", "friendlycaptcha"},
		{"mail provider", "MAIL_PROVIDER", "carrier-pigeon"},
		{"body limit", "MAX_BODY_BYTES", "0"},
		{"score", "CAPTCHA_MIN_SCORE", "1.5"},
		{"trusted proxy", "TRUSTED_PROXIES", "10.0.0.0/8,proxy.internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := Config{
		Captcha: CaptchaConfig{SecretKey: "captcha-secret"},
		Mail: MailConfig{
			ResendAPIKey: "re_123",
			SMTPPassword: "",
			To:           "hello@agency.dev",
		},
	}

	red := cfg.Redacted()

	assert.Equal(t, "********", red.Captcha.SecretKey)
	assert.Equal(t, "********", red.Mail.ResendAPIKey)
	assert.Empty(t, red.Mail.SMTPPassword)
	assert.Equal(t, "hello@agency.dev", red.Mail.To)
	assert.Equal(t, "captcha-secret", cfg.Captcha.SecretKey, "original must be untouched")
}
