package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osa911/agencysite/internal/api/validation"
)

// Sentinel errors for the contact pipeline. Every failure returned by
// InquiryService.Submit wraps exactly one of them.
var (
	ErrMalformedRequest     = errors.New("malformed request")
	ErrValidationFailed     = errors.New("validation failed")
	ErrCaptchaRejected      = errors.New("captcha rejected")
	ErrServiceMisconfigured = errors.New("service misconfigured")
	ErrDeliveryFailed       = errors.New("delivery failed")
)

// Collaborator errors
var (
	ErrCaptchaNotConfigured = errors.New("captcha secret key not configured")
	ErrMailNotConfigured    = errors.New("mail delivery not configured")
)

// ValidationError lists every field of an inquiry that broke a rule.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ProviderError is a failure reported by an external email provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Name       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s returned status %d (%s): %s", e.Provider, e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}
