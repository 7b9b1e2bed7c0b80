package handlers

import (
	"github.com/osa911/agencysite/internal/utils"
	"github.com/osa911/agencysite/internal/version"

	"github.com/gin-gonic/gin"
)

type VersionHandler struct{}

func NewVersionHandler() *VersionHandler {
	return &VersionHandler{}
}

func (h *VersionHandler) GetVersion(c *gin.Context) {
	utils.HandleSuccess(c, version.GetBuildInfo())
}
