package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

type ProfileController struct {
	users *services.UserService
}

func NewProfileController(users *services.UserService) *ProfileController {
	return &ProfileController{users: users}
}

func (ctl *ProfileController) Me(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	profile, err := ctl.users.GetProfile(user)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type ProfileUpdateInput struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

func (ctl *ProfileController) Update(c *gin.Context) {
	var input ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	err := ctl.users.UpdateProfile(user, services.ProfileUpdateInput{
		Email:     input.Email,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
