package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/osa911/agencysite/internal/config"
	"github.com/osa911/agencysite/internal/logging"
)

// ResendService sends messages through the Resend transactional email API
type ResendService struct {
	apiKey  string
	baseURL string
	to      string
	client  *http.Client
	logger  *logging.Logger
}

// NewResendService creates a new Resend client
func NewResendService(cfg config.MailConfig, logger *logging.Logger) *ResendService {
	return &ResendService{
		apiKey:  cfg.ResendAPIKey,
		baseURL: strings.TrimRight(cfg.ResendAPIURL, "/"),
		to:      cfg.To,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// resendEmail is the request body of POST /emails
type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (s *ResendService) Configured() bool {
	return s.apiKey != "" && s.to != ""
}

// Send posts msg to the Resend API. Errors are returned unchanged to the caller; nothing is retried.
func (s *ResendService) Send(ctx context.Context, msg *Email) error {
	if !s.Configured() {
		return ErrMailNotConfigured
	}

	payload := resendEmail{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}
	if len(payload.To) == 0 {
		payload.To = []string{s.to}
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal resend email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send resend email: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &ProviderError{Provider: "resend", StatusCode: resp.StatusCode}
		var apiErr resendError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			perr.Name = apiErr.Name
			perr.Message = apiErr.Message
		} else {
			perr.Message = http.StatusText(resp.StatusCode)
		}
		return perr
	}

	var result resendResponse
	if err := json.Unmarshal(body, &result); err == nil && result.ID != "" {
		s.logger.Debug("resend accepted email %s", result.ID)
	}

	return nil
}
