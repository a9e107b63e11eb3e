package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
)

// DashboardController serves the admin landing page counts
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetCounts returns record totals across all stores
// @Summary Dashboard counts
// @Description Returns student, teacher, staff and contact request totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Counts retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetCounts(ctx *gin.Context) {
	counts, err := c.dashboardService.Counts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(counts))
}
