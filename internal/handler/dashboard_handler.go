package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dashboard serves the admin overview counts. Admin routes never degrade to
// demo data, so a store failure is a real error here.
func (a *API) Dashboard(c *gin.Context) {
	summary, err := a.dashboard.Summary(c.Request.Context())
	if err != nil {
		a.log.Error("dashboard summary failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// StorageUsage reports media-library usage against the configured quota.
func (a *API) StorageUsage(c *gin.Context) {
	usage, err := a.images.Usage(c.Request.Context(), a.quotaBytes)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load storage usage")
		return
	}
	c.JSON(http.StatusOK, usage)
}
