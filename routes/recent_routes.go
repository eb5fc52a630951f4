package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namma-loo/api-go/controllers"
)

func SetupRecentRoutes(r *gin.RouterGroup, recentController *controllers.RecentController) {
	recentsGroup := r.Group("/recents")
	{
		recentsGroup.GET("", recentController.GetRecent)
		recentsGroup.GET("/most-viewed", recentController.GetMostViewed)
		recentsGroup.GET("/stats", recentController.GetStats)
		recentsGroup.DELETE("/:id", recentController.RemoveRecent)
		recentsGroup.DELETE("", recentController.ClearRecents)
	}
}
