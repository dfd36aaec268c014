package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-gateway/models"
	"order-gateway/services"
)

type HealthController struct {
	healthService *services.HealthService
}

func NewHealthController(healthService *services.HealthService) *HealthController {
	return &HealthController{healthService: healthService}
}

// Health reports process liveness. It never consults dependencies and never
// fails.
func (ctrl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: "order-gateway",
	})
}

// Ready reports the composite readiness of both dependencies. Both
// sub-statuses are always included so callers can tell which dependency is
// out.
func (ctrl *HealthController) Ready(c *gin.Context) {
	report := ctrl.healthService.Check(c.Request.Context())

	status := "ready"
	code := http.StatusOK
	if !report.Ready {
		status = "not ready"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, models.ReadinessResponse{
		Status:          status,
		Database:        report.Database,
		ExternalService: report.External,
	})
}
