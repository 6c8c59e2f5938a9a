package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/pkg/helpers"
)

// HealthController answers liveness probes
type HealthController struct {
	service string
	clock   helpers.Clock
}

// NewHealthController creates a new HealthController
func NewHealthController(service string, clock helpers.Clock) *HealthController {
	if clock == nil {
		clock = helpers.SystemClock{}
	}
	return &HealthController{service: service, clock: clock}
}

// Health reports that the API is serving
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service is healthy"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:    "ok",
		Timestamp: c.clock.Now().Format(time.RFC3339),
		Service:   c.service,
	}, ""))
}
