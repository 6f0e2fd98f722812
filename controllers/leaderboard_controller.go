package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

type LeaderboardController struct {
	leaderboard *services.LeaderboardService
}

func NewLeaderboardController(leaderboard *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboard: leaderboard}
}

func (ctl *LeaderboardController) Get(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	board, err := ctl.leaderboard.Get(user.ID, c.Query("exercise"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
