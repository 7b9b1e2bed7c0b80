package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/osa911/agencysite/internal/api/constants"
	"github.com/osa911/agencysite/internal/api/dto/common"
	"github.com/osa911/agencysite/internal/api/dto/v1/contact"
	"github.com/osa911/agencysite/internal/service"
	"github.com/osa911/agencysite/internal/utils"

	"github.com/gin-gonic/gin"
)

// InquirySubmitter runs one contact form submission end to end.
type InquirySubmitter interface {
	Submit(ctx context.Context, raw []byte, meta service.SubmissionMeta) error
}

type ContactHandler struct {
	inquiries InquirySubmitter
}

func NewContactHandler(inquiries InquirySubmitter) *ContactHandler {
	return &ContactHandler{inquiries: inquiries}
}

// Submit accepts a JSON inquiry, or a browser form post which is converted
// to the same JSON payload.
func (h *ContactHandler) Submit(c *gin.Context) {
	raw, err := readInquiryPayload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.HandleAPIError(c, err, http.StatusRequestEntityTooLarge, common.ErrCodePayloadTooLarge, "Request body too large")
			return
		}
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeMalformedRequest, "Request body could not be read")
		return
	}

	meta := service.SubmissionMeta{
		RequestID: c.GetString(constants.ContextKeyRequestID),
		RemoteIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}

	if err := h.inquiries.Submit(c.Request.Context(), raw, meta); err != nil {
		handleSubmitError(c, err)
		return
	}

	utils.HandleSuccess(c, contact.ContactResponse{
		Message: "Thanks for reaching out. We'll get back to you shortly.",
	})
}

func handleSubmitError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]common.ValidationError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, common.ValidationError{Field: f.Field, Rule: f.Rule, Message: f.Message})
		}
		utils.HandleAPIErrorWithDetails(c, err, http.StatusBadRequest, common.ErrCodeValidation, "Some fields are invalid", details)
	case errors.Is(err, service.ErrMalformedRequest):
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeMalformedRequest, "Request body must be a JSON object")
	case errors.Is(err, service.ErrCaptchaRejected):
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeCaptchaRejected, "CAPTCHA verification failed, please try again")
	case errors.Is(err, service.ErrDeliveryFailed):
		utils.HandleAPIError(c, err, http.StatusBadGateway, common.ErrCodeDeliveryFailed, "Your message could not be sent, please try again later")
	case errors.Is(err, service.ErrServiceMisconfigured):
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeServiceMisconfigured, "The contact form is temporarily unavailable")
	default:
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Internal server error")
	}
}

// readInquiryPayload returns the request body as JSON bytes.
func readInquiryPayload(c *gin.Context) ([]byte, error) {
	switch c.ContentType() {
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(32 << 10); err != nil {
			return nil, err
		}
	default:
		if c.Request.Body == nil {
			return nil, nil
		}
		return io.ReadAll(c.Request.Body)
	}

	payload := make(map[string]string, len(contact.InquiryFormFields)+1)
	form := c.Request.PostForm
	for _, field := range contact.InquiryFormFields {
		if values, ok := form[field]; ok && len(values) > 0 {
			payload[field] = values[0]
		}
	}
	for _, field := range contact.CaptchaFormFields {
		if token := form.Get(field); token != "" {
			payload["captchaToken"] = token
			break
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form payload: %w", err)
	}
	return raw, nil
}
