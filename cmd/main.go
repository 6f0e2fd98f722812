package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Shivam-2025/KhelSaksham/config"
	"github.com/Shivam-2025/KhelSaksham/routes"
	"github.com/Shivam-2025/KhelSaksham/services"
)

func main() {
	settings := config.Load()

	db, err := config.InitDB(settings)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	storage, err := services.NewStorageService(context.Background(), settings.S3Region, settings.S3Bucket, settings.CloudFrontURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	tokens := services.NewTokenService(settings.SecretKey, settings.Algorithm, settings.AccessTokenExpireHours)

	var rdb *redis.Client
	if settings.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: settings.RedisAddr})
	} else {
		logrus.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	r := routes.SetupRouter(routes.Deps{
		DB:      db,
		Tokens:  tokens,
		Storage: storage,
		Redis:   rdb,
	})

	logrus.Infof("listening on :%s", settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
