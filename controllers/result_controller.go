package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

type ResultController struct {
	results *services.ResultService
}

func NewResultController(results *services.ResultService) *ResultController {
	return &ResultController{results: results}
}

// ResultInput is the JSON body for /results. Unlike /submit, the exercise
// must be one of the fixed enum values.
type ResultInput struct {
	Exercise  string    `json:"exercise" binding:"required,oneof=pushup situp pullup jump"`
	Reps      int       `json:"reps" binding:"required,gt=0"`
	VideoURL  string    `json:"video_url" binding:"required"`
	VideoHash string    `json:"video_hash" binding:"required"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

func (ctl *ResultController) Create(c *gin.Context) {
	var input ResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	err := ctl.results.Create(user.ID, input.Exercise, input.Reps, input.VideoURL, input.VideoHash, input.Timestamp)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ctl *ResultController) History(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	items, err := ctl.results.History(user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
