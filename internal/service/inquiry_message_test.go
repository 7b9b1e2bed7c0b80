package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/agencysite/internal/models"
)

func TestInquirySubject(t *testing.T) {
	assert.Equal(t, "New project inquiry from Jo Doe", InquirySubject("Jo Doe"))
	assert.Equal(t, "New project inquiry from Jo Doe Bcc: x@y.z", InquirySubject("Jo\r\nDoe\nBcc: x@y.z"))
}

func TestComposeInquiryEmail_EscapesHTML(t *testing.T) {
	inq := &models.Inquiry{
		Name:        `<script>alert("x")</script>`,
		Email:       "jo@x.com",
		Budget:      "<b>$10k</b>",
		Description: "Line one\nLine <two> & more",
	}

	msg, err := ComposeInquiryEmail(inq, "from@agency.dev", "to@agency.dev")
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "&lt;b&gt;$10k&lt;/b&gt;")
	assert.Contains(t, msg.HTML, "Line one\nLine &lt;two&gt; &amp; more")
	assert.Contains(t, msg.HTML, `href="mailto:jo@x.com"`)

	// Plain text is delivered verbatim.
	assert.Contains(t, msg.Text, "Line one\nLine <two> & more")
}

func TestComposeInquiryEmail_TextLayout(t *testing.T) {
	inq := &models.Inquiry{
		Name:        "Jo",
		Email:       "jo@x.com",
		ProjectType: "Website",
		Timeline:    "  ",
		Description: "Need a site.",
	}

	msg, err := ComposeInquiryEmail(inq, "from@agency.dev", "to@agency.dev")
	require.NoError(t, err)

	want := strings.Join([]string{
		"New project inquiry",
		"",
		"Name: Jo",
		"Email: jo@x.com",
		"Project type: Website",
		"",
		"Project description:",
		"Need a site.",
		"",
	}, "\n")
	assert.Equal(t, want, msg.Text)
	assert.Equal(t, "jo@x.com", msg.ReplyTo)
	assert.Equal(t, []string{"to@agency.dev"}, msg.To)
}

func TestComposeInquiryEmail_LabelsStayOnOneLine(t *testing.T) {
	inq := &models.Inquiry{
		Name:        "Jo",
		Email:       "jo@x.com",
		Budget:      "$5k\nEmail: attacker@evil.example",
		Description: "Line one\nLine two",
	}

	msg, err := ComposeInquiryEmail(inq, "from@agency.dev", "to@agency.dev")
	require.NoError(t, err)

	assert.Contains(t, msg.Text, "Budget: $5k Email: attacker@evil.example\n")
	assert.Equal(t, 1, strings.Count(msg.Text, "\nEmail: "))
	assert.Contains(t, msg.Text, "Line one\nLine two")
}
