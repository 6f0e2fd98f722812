package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

type DashboardController struct {
	stats *services.StatsService
}

func NewDashboardController(stats *services.StatsService) *DashboardController {
	return &DashboardController{stats: stats}
}

func (ctl *DashboardController) Me(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	dash, err := ctl.stats.Dashboard(user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
