package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/namma-loo/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetR2Config() *R2Config {
	return &R2Config{
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
		Region:          "auto",
	}
}

// DefaultPosition is the fallback position the transport layer applies
// when a request carries no usable user location. Bengaluru city center
// unless overridden by env.
type DefaultPosition struct {
	Latitude  float64
	Longitude float64
}

func GetDefaultPosition() DefaultPosition {
	pos := DefaultPosition{Latitude: 12.9716, Longitude: 77.5946}
	if v, err := strconv.ParseFloat(os.Getenv("DEFAULT_LAT"), 64); err == nil {
		pos.Latitude = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("DEFAULT_LNG"), 64); err == nil {
		pos.Longitude = v
	}
	return pos
}

func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	db.AutoMigrate(&models.User{}, &models.RefreshToken{}, &models.Toilet{}, &models.Review{}, &models.Report{})

	return db
}
