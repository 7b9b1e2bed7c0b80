package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	envfile "github.com/osa911/agencysite/internal/config/env"
)

// Config holds all configuration for the application.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	// Server Configuration
	Environment     string        `env:"ENV" envDefault:"development"`
	Port            string        `env:"PORT" envDefault:"8080"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	StaticDir       string        `env:"STATIC_DIR"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"agencysite"`

	Captcha CaptchaConfig
	Mail    MailConfig
}

// CaptchaConfig configures the CAPTCHA verification service.
type CaptchaConfig struct {
	Provider  string        `env:"CAPTCHA_PROVIDER" envDefault:"turnstile"`
	SecretKey string        `env:"CAPTCHA_SECRET_KEY"`
	SiteKey   string        `env:"CAPTCHA_SITE_KEY"`
	VerifyURL string        `env:"CAPTCHA_VERIFY_URL"`
	MinScore  float64       `env:"CAPTCHA_MIN_SCORE" envDefault:"0"`
	Timeout   time.Duration `env:"CAPTCHA_TIMEOUT" envDefault:"10s"`
}

// MailConfig configures outbound delivery of contact inquiries.
type MailConfig struct {
	Provider     string        `env:"MAIL_PROVIDER" envDefault:"resend"`
	To           string        `env:"CONTACT_TO_EMAIL"`
	From         string        `env:"CONTACT_FROM_EMAIL" envDefault:"Agency Website <onboarding@resend.dev>"`
	ResendAPIKey string        `env:"RESEND_API_KEY"`
	ResendAPIURL string        `env:"RESEND_API_URL" envDefault:"https://api.resend.com"`
	SMTPHost     string        `env:"SMTP_HOST"`
	SMTPPort     int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string        `env:"SMTP_USERNAME"`
	SMTPPassword string        `env:"SMTP_PASSWORD"`
	Timeout      time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
}

// Mail providers
const (
	MailProviderResend = "resend"
	MailProviderSMTP   = "smtp"
)

// CAPTCHA providers
const (
	CaptchaProviderTurnstile = "turnstile"
	CaptchaProviderRecaptcha = "recaptcha"
	CaptchaProviderHCaptcha  = "hcaptcha"
)

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	if _, err := envfile.LoadEnv(); err != nil {
		return nil, err
	}
	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Captcha.Provider = strings.ToLower(strings.TrimSpace(cfg.Captcha.Provider))
	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// Validate rejects values that can never work. Missing secrets are not an
// error here: the contact pipeline reports them per request instead.
func (c *Config) Validate() error {
	switch c.Captcha.Provider {
	case CaptchaProviderTurnstile, CaptchaProviderRecaptcha, CaptchaProviderHCaptcha:
	default:
		return fmt.Errorf("unknown CAPTCHA_PROVIDER %q", c.Captcha.Provider)
	}

	switch c.Mail.Provider {
	case MailProviderResend, MailProviderSMTP:
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	// Proxies are IPs or CIDRs; client IP headers are only read from them.
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", proxy)
		}
	}

	if c.Captcha.MinScore < 0 || c.Captcha.MinScore > 1 {
		return fmt.Errorf("CAPTCHA_MIN_SCORE must be between 0 and 1")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Redacted returns a copy safe to print: every secret is masked.
func (c Config) Redacted() Config {
	c.Captcha.SecretKey = mask(c.Captcha.SecretKey)
	c.Mail.ResendAPIKey = mask(c.Mail.ResendAPIKey)
	c.Mail.SMTPPassword = mask(c.Mail.SMTPPassword)
	return c
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}
