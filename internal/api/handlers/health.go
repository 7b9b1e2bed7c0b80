package handlers

import (
	"net/http"

	"github.com/osa911/agencysite/internal/api/dto/common"
	"github.com/osa911/agencysite/internal/api/dto/v1/health"

	"github.com/gin-gonic/gin"
)

// ReadinessReporter reports whether the contact pipeline's integrations are configured.
type ReadinessReporter interface {
	DeliveryReady() (captcha bool, mail bool)
}

type HealthHandler struct {
	readiness ReadinessReporter
}

func NewHealthHandler(readiness ReadinessReporter) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// Check is a liveness check. It always answers 200 while the process serves
// requests; missing integrations are reported, not treated as failure.
func (h *HealthHandler) Check(c *gin.Context) {
	captcha, mail := h.readiness.DeliveryReady()
	c.JSON(http.StatusOK, common.NewSuccessResponse(health.HealthResponse{
		Status:  "ok",
		Mail:    mail,
		Captcha: captcha,
	}))
}
