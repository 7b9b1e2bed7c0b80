package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/osa911/agencysite/internal/api/sanitization"
	"github.com/osa911/agencysite/internal/models"
)

// html/template escapes every interpolated value; the description is
// rendered as text inside a pre-wrap block so line breaks survive.
var inquiryHTML = htmltemplate.Must(htmltemplate.New("inquiry.html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, Segoe UI, Helvetica, Arial, sans-serif; color: #111;">
<h2>New project inquiry</h2>
<table cellpadding="4" cellspacing="0">
<tr><td><strong>Name:</strong></td><td>{{ .Name }}</td></tr>
<tr><td><strong>Email:</strong></td><td><a href="mailto:{{ .Email }}">{{ .Email }}</a></td></tr>
{{- range .Classification }}
<tr><td><strong>{{ .Label }}:</strong></td><td>{{ .Value }}</td></tr>
{{- end }}
</table>
<h3>Project description</h3>
<div style="white-space: pre-wrap;">{{ .Description }}</div>
</body>
</html>
`))

var inquiryText = texttemplate.Must(texttemplate.New("inquiry.txt").Parse(`New project inquiry

Name: {{ .Name }}
Email: {{ .Email }}
{{- range .Classification }}
{{ .Label }}: {{ .Value }}
{{- end }}

Project description:
{{ .Description }}
`))

type inquiryView struct {
	Name           string
	Email          string
	Classification []models.InquiryField
	Description    string
}

// InquirySubject returns the subject line for an inquiry from name.
func InquirySubject(name string) string {
	return fmt.Sprintf("New project inquiry from %s", sanitization.SingleLine(name))
}

// ComposeInquiryEmail renders the operator notification for inq.
// The CAPTCHA token is never part of the view.
func ComposeInquiryEmail(inq *models.Inquiry, from, to string) (*Email, error) {
	// Labels are one line each; only the description keeps its line breaks.
	classification := inq.Classification()
	for i := range classification {
		classification[i].Value = sanitization.SingleLine(classification[i].Value)
	}

	view := inquiryView{
		Name:           sanitization.SingleLine(inq.Name),
		Email:          inq.Email,
		Classification: classification,
		Description:    inq.Description,
	}

	var html bytes.Buffer
	if err := inquiryHTML.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}

	var text bytes.Buffer
	if err := inquiryText.Execute(&text, view); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}

	return &Email{
		From:    from,
		To:      []string{to},
		ReplyTo: inq.Email,
		Subject: InquirySubject(inq.Name),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
