package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

type AchievementController struct {
	achievements *services.AchievementService
}

func NewAchievementController(achievements *services.AchievementService) *AchievementController {
	return &AchievementController{achievements: achievements}
}

func (ctl *AchievementController) Me(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	report, err := ctl.achievements.Evaluate(user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
