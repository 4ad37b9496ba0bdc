package handlers

import (
	"net/http"

	"morisbiz/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the route registration needs.
type HandlerBundle struct {
	Business  *BusinessHandler
	Property  *PropertyHandler
	Contact   *ContactHandler
	Analytics *AnalyticsHandler
	Admin     *AdminHandler
}

// HealthHandler reports the latest stored health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
