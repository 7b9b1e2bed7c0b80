package models

import "strings"

// Inquiry is a prospective client's project request from the public contact form.
// It is never persisted: it lives for the duration of one submission.
type Inquiry struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	ProjectType  string `json:"projectType"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Description  string `json:"description" binding:"required,min=10,max=5000"`
	CaptchaToken string `json:"captchaToken" binding:"required,min=10"`
}

// InquiryField is one optional classification line of an inquiry.
type InquiryField struct {
	Label string
	Value string
}

// Classification returns the optional fields that carry a value, in display order.
func (i *Inquiry) Classification() []InquiryField {
	fields := []InquiryField{
		{Label: "Project type", Value: i.ProjectType},
		{Label: "Budget", Value: i.Budget},
		{Label: "Timeline", Value: i.Timeline},
	}

	present := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			present = append(present, f)
		}
	}
	return present
}
