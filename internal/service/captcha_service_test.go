package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/agencysite/internal/config"
)

func newCaptchaServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	captured := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		*captured = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestCaptchaService_DefaultVerifyURL(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Provider: config.CaptchaProviderTurnstile, SecretKey: "s"})
	assert.Equal(t, "https://challenges.cloudflare.com/turnstile/v0/siteverify", svc.verifyURL)
	assert.True(t, svc.Configured())

	svc = NewCaptchaService(config.CaptchaConfig{Provider: config.CaptchaProviderHCaptcha})
	assert.False(t, svc.Configured())
	assert.ErrorIs(t, svc.Verify(context.Background(), "token", ""), ErrCaptchaNotConfigured)
}

func TestCaptchaService_Verify(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		status   int
		body     string
		minScore *float64
		wantErr  bool
	}{
		{name: "success", status: http.StatusOK, body: `{"success":true,"hostname":"agency.dev"}`},
		{name: "rejected", status: http.StatusOK, body: `{"success":false,"error-codes":["invalid-input-response"]}`, wantErr: true},
		{name: "provider error status", status: http.StatusInternalServerError, body: `{"success":true}`, wantErr: true},
		{name: "unreadable body", status: http.StatusOK, body: `<html>`, wantErr: true},
		{name: "score above minimum", status: http.StatusOK, body: `{"success":true,"score":0.9}`, minScore: score(0.5)},
		{name: "score below minimum", status: http.StatusOK, body: `{"success":true,"score":0.1}`, minScore: score(0.5), wantErr: true},
		{name: "score missing", status: http.StatusOK, body: `{"success":true}`, minScore: score(0.5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newCaptchaServer(t, tt.status, tt.body)
			cfg := config.CaptchaConfig{
				Provider:  config.CaptchaProviderTurnstile,
				SecretKey: "secret-key",
				VerifyURL: srv.URL,
				Timeout:   2 * time.Second,
			}
			if tt.minScore != nil {
				cfg.MinScore = *tt.minScore
			}

			err := NewCaptchaService(cfg).Verify(context.Background(), "client-token", "203.0.113.7")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, "secret-key", captured.PostForm.Get("secret"))
			assert.Equal(t, "client-token", captured.PostForm.Get("response"))
			assert.Equal(t, "203.0.113.7", captured.PostForm.Get("remoteip"))
		})
	}
}

func TestCaptchaService_EmptyTokenNeverSent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	svc := NewCaptchaService(config.CaptchaConfig{SecretKey: "s", VerifyURL: srv.URL})
	assert.Error(t, svc.Verify(context.Background(), "", ""))
	assert.Zero(t, calls)
}

func TestCaptchaService_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := NewCaptchaService(config.CaptchaConfig{SecretKey: "s", VerifyURL: url, Timeout: time.Second})
	assert.Error(t, svc.Verify(context.Background(), "token", ""))
}
