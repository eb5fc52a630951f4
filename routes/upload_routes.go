package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namma-loo/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		upload.POST("/presigned-url", uploadController.GetPresignedURL)
		upload.POST("/confirm", uploadController.ConfirmUpload)
		upload.DELETE("/file/:key", uploadController.DeleteFile)
	}
}
