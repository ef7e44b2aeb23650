package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/middleware"
)

// UploadRouteConfig holds dependencies for file upload routes.
type UploadRouteConfig struct {
	UploadHandler  *handlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUploadRoutes configures /upload routes.
func SetupUploadRoutes(v1 *gin.RouterGroup, cfg *UploadRouteConfig) {
	upload := v1.Group("/upload")
	upload.Use(cfg.AuthMiddleware.RequireAuth())
	{
		upload.POST("/file/", cfg.UploadHandler.UploadFile)
		upload.POST("/files/", cfg.UploadHandler.UploadFiles)
	}
}
