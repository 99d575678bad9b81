package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("/chat", fileHandler.UploadChatFile)
	files.POST("/profile-image", fileHandler.UploadProfileImage)
	files.DELETE("/:fileId", fileHandler.DeleteFile)
}
