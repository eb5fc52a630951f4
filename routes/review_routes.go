package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namma-loo/api-go/controllers"
)

func SetupReviewRoutes(r *gin.RouterGroup, reviewController *controllers.ReviewController) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", reviewController.CreateReview)
		reviews.PUT("/:id", reviewController.UpdateReview)
		reviews.DELETE("/:id", reviewController.DeleteReview)
	}
}
