package contact

// Form field names accepted as the CAPTCHA token on no-JS form posts,
// as rendered by the Turnstile, reCAPTCHA and hCaptcha widgets.
var CaptchaFormFields = []string{
	"captchaToken",
	"cf-turnstile-response",
	"g-recaptcha-response",
	"h-captcha-response",
}

// InquiryFormFields are the inquiry fields copied from a form post, by JSON name.
var InquiryFormFields = []string{
	"name",
	"email",
	"projectType",
	"budget",
	"timeline",
	"description",
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Message string `json:"message"`
}
