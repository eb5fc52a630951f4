package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namma-loo/api-go/controllers"
)

func SetupToiletRoutes(r *gin.RouterGroup, toiletController *controllers.ToiletController, recentController *controllers.RecentController) {
	toilets := r.Group("/toilets")
	{
		toilets.GET("", toiletController.GetToilets)
		toilets.GET("/near/:lat/:lng", toiletController.GetNearbyToilets)
		toilets.GET("/top-rated", toiletController.GetTopRated)
		toilets.GET("/top-rated/:limit", toiletController.GetTopRated)
		toilets.GET("/:id", toiletController.GetToiletByID)
		toilets.POST("/:id/view", recentController.RecordView)
	}
}
