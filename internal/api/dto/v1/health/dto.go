package health

// HealthResponse reports liveness and which integrations are configured.
// It never includes credentials or addresses.
type HealthResponse struct {
	Status  string `json:"status"`
	Mail    bool   `json:"mail_configured"`
	Captcha bool   `json:"captcha_configured"`
}
