package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/services"
)

type AuthController struct {
	users  *services.UserService
	tokens *services.TokenService
}

func NewAuthController(users *services.UserService, tokens *services.TokenService) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age"`
	Location string `json:"location"`
	Sport    string `json:"sport"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.users.Register(services.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Age:      input.Age,
		Location: input.Location,
		Sport:    input.Sport,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.Authenticate(input.Email, input.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	accessToken, err := ctl.tokens.IssueAccessToken(user.ID)
	if err != nil {
		respondErr(c, services.Wrap(services.KindUpstream, "Could not generate token", err))
		return
	}
	refreshToken, err := ctl.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		respondErr(c, services.Wrap(services.KindUpstream, "Could not generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	})
}

// Refresh exchanges a refresh token, passed as a query or form value, for
// a fresh access token.
func (ctl *AuthController) Refresh(c *gin.Context) {
	refreshToken := c.Query("refresh_token")
	if refreshToken == "" {
		refreshToken = c.PostForm("refresh_token")
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed: refresh_token required"})
		return
	}

	userID, err := ctl.tokens.Decode(refreshToken, services.TokenTypeRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed: " + err.Error()})
		return
	}

	accessToken, err := ctl.tokens.IssueAccessToken(userID)
	if err != nil {
		respondErr(c, services.Wrap(services.KindUpstream, "Could not generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}
