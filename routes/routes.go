package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/namma-loo/api-go/controllers"
	"github.com/namma-loo/api-go/middleware"
	"github.com/namma-loo/api-go/recents"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, recentCache *recents.Cache) {
	authController := controllers.NewAuthController(db)
	toiletController := controllers.NewToiletController(db, recentCache)
	recentController := controllers.NewRecentController(db, recentCache)
	reviewController := controllers.NewReviewController(db)
	reportController := controllers.NewReportController(db)
	uploadController := controllers.NewUploadController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/google-login", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)

		SetupToiletRoutes(public, toiletController, recentController)
		public.GET("/reviews/toilet/:toiletId", reviewController.GetToiletReviews)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupRecentRoutes(protected, recentController)
		SetupReviewRoutes(protected, reviewController)
		SetupReportRoutes(protected, reportController)
		SetupUploadRoutes(protected, uploadController)
	}
}
