package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Shivam-2025/KhelSaksham/controllers"
	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

// Deps is everything the router needs, built once in main. No package
// globals; teardown happens only at process exit.
type Deps struct {
	DB      *gorm.DB
	Tokens  *services.TokenService
	Storage *services.StorageService
	Redis   *redis.Client
}

const authRateLimitPerSecond = 10

func SetupRouter(d Deps) *gin.Engine {
	users := services.NewUserService(d.DB)
	results := services.NewResultService(d.DB)
	leaderboard := services.NewLeaderboardService(d.DB)
	achievements := services.NewAchievementService(d.DB)
	stats := services.NewStatsService(d.DB)

	auth := controllers.NewAuthController(users, d.Tokens)
	upload := controllers.NewUploadController(d.Storage, results)
	result := controllers.NewResultController(results)
	board := controllers.NewLeaderboardController(leaderboard)
	profile := controllers.NewProfileController(users)
	achievement := controllers.NewAchievementController(achievements)
	dashboard := controllers.NewDashboardController(stats)

	r := gin.Default()
	r.Use(middlewares.CORS())
	r.Use(middlewares.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes, rate limited per client IP.
	limited := r.Group("/")
	limited.Use(middlewares.RateLimit(d.Redis, authRateLimitPerSecond))
	{
		limited.POST("/register", auth.Register)
		limited.POST("/login", auth.Login)
		limited.POST("/refresh", auth.Refresh)
	}

	protected := r.Group("/")
	protected.Use(middlewares.Auth(d.Tokens, d.DB))
	{
		protected.POST("/upload", upload.Upload)
		protected.POST("/submit", upload.Submit)
		protected.POST("/results", result.Create)
		protected.GET("/leaderboard", board.Get)
		protected.GET("/user/history", result.History)
		protected.GET("/profile/me", profile.Me)
		protected.PATCH("/profile/me", profile.Update)
		protected.GET("/achievements/me", achievement.Me)
		protected.GET("/dashboard/me", dashboard.Me)
	}

	return r
}
