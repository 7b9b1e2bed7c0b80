package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/osa911/agencysite/internal/config"
)

// Siteverify endpoints per provider. All three accept the same form body.
var captchaVerifyURLs = map[string]string{
	config.CaptchaProviderTurnstile: "https://challenges.cloudflare.com/turnstile/v0/siteverify",
	config.CaptchaProviderRecaptcha: "https://www.google.com/recaptcha/api/siteverify",
	config.CaptchaProviderHCaptcha:  "https://api.hcaptcha.com/siteverify",
}

// CaptchaService verifies client CAPTCHA tokens with the provider.
type CaptchaService struct {
	secretKey string
	verifyURL string
	minScore  float64
	client    *http.Client
}

// NewCaptchaService creates a new CAPTCHA service
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = captchaVerifyURLs[cfg.Provider]
	}
	return &CaptchaService{
		secretKey: cfg.SecretKey,
		verifyURL: verifyURL,
		minScore:  cfg.MinScore,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// captchaResponse is the siteverify response shared by Turnstile, reCAPTCHA and hCaptcha
type captchaResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"`
	Action      string   `json:"action,omitempty"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Configured reports whether a secret key is available.
func (s *CaptchaService) Configured() bool {
	return s.secretKey != "" && s.verifyURL != ""
}

// Verify returns nil only when the provider positively confirms the token.
// Every other outcome is an error: the check fails closed.
func (s *CaptchaService) Verify(ctx context.Context, token, remoteIP string) error {
	if !s.Configured() {
		return ErrCaptchaNotConfigured
	}

	if token == "" {
		return fmt.Errorf("captcha token is required")
	}

	// Prepare the request
	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Send verification request
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify captcha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("captcha provider returned status %d", resp.StatusCode)
	}

	// Parse response
	var result captchaResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse captcha response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("captcha verification failed: %v", result.ErrorCodes)
	}

	// Check score (reCAPTCHA v3 only reports one)
	if s.minScore > 0 {
		if result.Score == nil {
			return fmt.Errorf("captcha score missing, minimum is %.2f", s.minScore)
		}
		if *result.Score < s.minScore {
			return fmt.Errorf("captcha score too low: %.2f < %.2f", *result.Score, s.minScore)
		}
	}

	return nil
}
