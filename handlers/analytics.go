package handlers

import (
	"net/http"

	"morisbiz/services/analytics"
	"morisbiz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler serves the public page view tracking endpoint.
type AnalyticsHandler struct {
	Analytics analytics.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: svc}
}

// PageViewHandler handles POST /api/analytics/pageview. The increment runs
// off the request path; visitors never wait on the counter write.
func (h *AnalyticsHandler) PageViewHandler(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	go func() {
		if err := h.Analytics.RecordPageView(req.Path); err != nil {
			utils.GetLogger().Warn("failed to record page view",
				zap.String("path", req.Path), zap.Error(err))
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"message": "recorded"})
}
