package controllers

import (
	"github.com/gin-gonic/gin"

	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Get godoc
// @Summary Role panel for the signed-in user
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) Get(c *gin.Context) {
	panel, err := d.dashboardService.Build(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, panel, "")
}
