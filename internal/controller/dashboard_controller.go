package controller

import (
	"net/http"
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Stats godoc
// @Summary Manager dashboard summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response{data=model.DashboardStats}
// @Router /api/dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Health godoc
// @Summary Liveness probe
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /health [get]
func (c *DashboardController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
