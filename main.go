package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/namma-loo/api-go/config"
	"github.com/namma-loo/api-go/logger"
	"github.com/namma-loo/api-go/recents"
	"github.com/namma-loo/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := logger.Init(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database and the recent-views cache store
	db := config.InitDB()
	redisClient := config.InitRedis()
	recentCache := recents.NewCache(recents.NewRedisStore(redisClient))

	r := gin.Default()

	r.Use(gin.LoggerWithWriter(os.Stdout))
	r.Use(cors.Default())

	routes.SetupRoutes(r, db, recentCache)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
