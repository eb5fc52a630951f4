package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namma-loo/api-go/controllers"
)

func SetupReportRoutes(r *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := r.Group("/reports")
	{
		reports.POST("", reportController.CreateReport)
		reports.GET("/toilet/:toiletId", reportController.GetToiletReports)
		reports.PUT("/:id/status", reportController.UpdateReportStatus)
	}
}
