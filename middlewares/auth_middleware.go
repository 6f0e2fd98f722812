package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shivam-2025/KhelSaksham/models"
	"github.com/Shivam-2025/KhelSaksham/services"
)

// Context keys set for downstream handlers.
const (
	CtxUserID      = "userID"
	CtxCurrentUser = "currentUser"
)

// Auth resolves the Bearer access token to a loaded User row. A valid
// token whose subject no longer exists is a 404, everything else a 401.
func Auth(tokens *services.TokenService, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Decode(tokenString, services.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User lookup failed"})
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxCurrentUser, &user)
		c.Next()
	}
}

// CurrentUser returns the user loaded by Auth. Panics if called on a
// route that is not behind the middleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(CtxCurrentUser).(*models.User)
}
