package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osa911/agencysite/internal/api/validation"
	"github.com/osa911/agencysite/internal/config"
	"github.com/osa911/agencysite/internal/logging"
	"github.com/osa911/agencysite/internal/models"
)

const tracerName = "github.com/osa911/agencysite/internal/service"

var tracer = otel.Tracer(tracerName)

// CaptchaVerifier confirms that a client token came from a solved challenge.
type CaptchaVerifier interface {
	Configured() bool
	Verify(ctx context.Context, token, remoteIP string) error
}

// SubmissionMeta carries request details used for logging and CAPTCHA checks.
// None of it is forwarded in the email.
type SubmissionMeta struct {
	RequestID string
	RemoteIP  string
	UserAgent string
	Referrer  string
}

// String renders the metadata as log fields. Client-supplied values are quoted.
func (m SubmissionMeta) String() string {
	return fmt.Sprintf("request_id=%s ip=%s ua=%q referrer=%q", m.RequestID, m.RemoteIP, m.UserAgent, m.Referrer)
}

// InquiryService runs the contact form pipeline: parse, validate, verify, compose, deliver.
type InquiryService struct {
	validate *validator.Validate
	captcha  CaptchaVerifier
	mailer   Mailer
	from     string
	to       string
	logger   *logging.Logger
}

// NewInquiryService creates a new inquiry service. mailCfg is copied; later
// changes to the caller's config have no effect.
func NewInquiryService(captcha CaptchaVerifier, mailer Mailer, mailCfg config.MailConfig, logger *logging.Logger) *InquiryService {
	return &InquiryService{
		validate: validation.New(),
		captcha:  captcha,
		mailer:   mailer,
		from:     mailCfg.From,
		to:       mailCfg.To,
		logger:   logger,
	}
}

// submission is the state threaded through the pipeline stages of one call.
type submission struct {
	raw        []byte
	meta       SubmissionMeta
	inquiry    models.Inquiry
	typeErrors []validation.FieldError
	token      string
	email      *Email
}

type stage struct {
	name string
	run  func(ctx context.Context, sub *submission) error
}

func (s *InquiryService) stages() []stage {
	return []stage{
		{"parse", s.parse},
		{"validate", s.validateInquiry},
		{"extract_token", s.extractToken},
		{"verify_captcha", s.verifyCaptcha},
		{"check_delivery", s.checkDelivery},
		{"compose", s.compose},
		{"deliver", s.deliver},
	}
}

// Submit processes one raw contact form payload. It returns nil once exactly
// one email has been accepted by the provider. Any error wraps one of
// ErrMalformedRequest, ErrValidationFailed, ErrCaptchaRejected,
// ErrServiceMisconfigured or ErrDeliveryFailed. Nothing is retried.
func (s *InquiryService) Submit(ctx context.Context, raw []byte, meta SubmissionMeta) error {
	ctx, span := tracer.Start(ctx, "inquiry.submit",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("request.id", meta.RequestID)),
	)
	defer span.End()

	sub := &submission{raw: raw, meta: meta}
	for _, st := range s.stages() {
		stageCtx, stageSpan := tracer.Start(ctx, "inquiry."+st.name)
		err := st.run(stageCtx, sub)
		if err != nil {
			stageSpan.RecordError(err)
			stageSpan.SetStatus(codes.Error, st.name)
			stageSpan.End()

			span.SetAttributes(attribute.String("inquiry.failed_stage", st.name))
			span.SetStatus(codes.Error, st.name)
			s.logFailure(st.name, meta, err)
			return err
		}
		stageSpan.End()
	}

	s.logger.Info("Inquiry delivered [%s]", meta)
	return nil
}

func (s *InquiryService) logFailure(stage string, meta SubmissionMeta, err error) {
	switch {
	case errors.Is(err, ErrServiceMisconfigured), errors.Is(err, ErrDeliveryFailed):
		s.logger.Error("Inquiry failed at %s [%s]: %v", stage, meta, err)
	default:
		s.logger.Warn("Inquiry rejected at %s [%s]: %v", stage, meta, err)
	}
}

// parse decodes the payload into an inquiry. Malformed JSON or a non-object
// document fails the call; a present field with a non-string value is kept
// as a type error for the validate stage.
func (s *InquiryService) parse(_ context.Context, sub *submission) error {
	dec := json.NewDecoder(bytes.NewReader(sub.raw))

	var doc map[string]json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrMalformedRequest)
		}
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformedRequest)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedRequest)
	}

	inq := &sub.inquiry
	fields := []struct {
		name string
		dst  *string
	}{
		{"name", &inq.Name},
		{"email", &inq.Email},
		{"projectType", &inq.ProjectType},
		{"budget", &inq.Budget},
		{"timeline", &inq.Timeline},
		{"description", &inq.Description},
		{"captchaToken", &inq.CaptchaToken},
	}

	for _, f := range fields {
		rawValue, ok := doc[f.name]
		if !ok || bytes.Equal(bytes.TrimSpace(rawValue), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(rawValue, f.dst); err != nil {
			sub.typeErrors = append(sub.typeErrors, validation.FieldError{
				Field:   f.name,
				Rule:    "type",
				Param:   "string",
				Message: validation.Message(f.name, "type", "string"),
			})
		}
	}
	return nil
}

// validateInquiry reports every broken rule at once, type errors included.
func (s *InquiryService) validateInquiry(_ context.Context, sub *submission) error {
	fields := append([]validation.FieldError(nil), sub.typeErrors...)

	typed := make(map[string]bool, len(sub.typeErrors))
	for _, f := range sub.typeErrors {
		typed[f.Field] = true
	}

	if err := s.validate.Struct(sub.inquiry); err != nil {
		formatted := validation.FormatValidationError(err)
		if formatted == nil {
			return fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		for _, f := range formatted {
			// The type error already explains why the field is empty.
			if !typed[f.Field] {
				fields = append(fields, f)
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// extractToken moves the CAPTCHA token out of the inquiry so later stages never see it.
func (s *InquiryService) extractToken(_ context.Context, sub *submission) error {
	sub.token = sub.inquiry.CaptchaToken
	sub.inquiry.CaptchaToken = ""
	return nil
}

func (s *InquiryService) verifyCaptcha(ctx context.Context, sub *submission) error {
	if s.captcha == nil || !s.captcha.Configured() {
		return fmt.Errorf("%w: %v", ErrServiceMisconfigured, ErrCaptchaNotConfigured)
	}

	err := s.captcha.Verify(ctx, sub.token, sub.meta.RemoteIP)
	sub.token = ""
	if err != nil {
		if errors.Is(err, ErrCaptchaNotConfigured) {
			return fmt.Errorf("%w: %v", ErrServiceMisconfigured, err)
		}
		return fmt.Errorf("%w: %v", ErrCaptchaRejected, err)
	}
	return nil
}

func (s *InquiryService) checkDelivery(_ context.Context, _ *submission) error {
	if s.mailer == nil || s.to == "" || !s.mailer.Configured() {
		return fmt.Errorf("%w: %v", ErrServiceMisconfigured, ErrMailNotConfigured)
	}
	return nil
}

func (s *InquiryService) compose(_ context.Context, sub *submission) error {
	msg, err := ComposeInquiryEmail(&sub.inquiry, s.from, s.to)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceMisconfigured, err)
	}
	sub.email = msg
	return nil
}

func (s *InquiryService) deliver(ctx context.Context, sub *submission) error {
	if err := s.mailer.Send(ctx, sub.email); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// DeliveryReady reports whether both external collaborators are configured.
func (s *InquiryService) DeliveryReady() (captcha bool, mail bool) {
	captcha = s.captcha != nil && s.captcha.Configured()
	mail = s.mailer != nil && s.to != "" && s.mailer.Configured()
	return captcha, mail
}
