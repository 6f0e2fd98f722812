package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shivam-2025/KhelSaksham/models"
)

// Settings carries everything read from the environment. It is built once
// in main and handed to whoever needs it; there are no package-level
// singletons for the DB, storage or Redis handles.
type Settings struct {
	DatabaseURL            string
	SecretKey              string
	Algorithm              string
	AccessTokenExpireHours int

	S3Region      string
	S3Bucket      string
	CloudFrontURL string

	RedisAddr string
	Port      string
}

func Load() Settings {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	return Settings{
		DatabaseURL:            getenv("DATABASE_URL", "host=localhost user=postgres dbname=khel port=5432 sslmode=disable"),
		SecretKey:              getenv("SECRET_KEY", "supersecretkey"),
		Algorithm:              getenv("ALGORITHM", "HS256"),
		AccessTokenExpireHours: getenvInt("ACCESS_TOKEN_EXPIRE_HOURS", 24),
		S3Region:               getenv("S3_REGION", os.Getenv("AWS_REGION")),
		S3Bucket:               os.Getenv("S3_BUCKET"),
		CloudFrontURL:          os.Getenv("CLOUDFRONT_URL"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		Port:                   getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func InitDB(s Settings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(s.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Result{},
		&models.Achievement{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
