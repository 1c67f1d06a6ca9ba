package api

import (
	"github.com/gin-gonic/gin"

	"codeassist/pkg/logger"
)

// SetupRouter configures and returns a gin engine with all workspace routes
// registered. Recovery is installed so a panicking handler answers a 500
// instead of killing the process.
func SetupRouter(a *API, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	files := router.Group("/api/files")
	{
		files.GET("", a.ListFilesHandler)
		files.POST("", a.CreateFileHandler)
		files.GET("/:id", a.GetFileHandler)
		files.PUT("/:id", a.UpdateFileHandler)
		files.DELETE("/:id", a.DeleteFileHandler)
	}

	folders := router.Group("/api/folders")
	{
		folders.GET("", a.ListFoldersHandler)
		folders.POST("", a.CreateFolderHandler)
		folders.DELETE("/:id", a.DeleteFolderHandler)
	}

	chat := router.Group("/api/chat")
	{
		chat.GET("/:type", a.GetChatHistoryHandler)
		chat.POST("/:type", a.AddChatMessageHandler)
	}

	router.GET("/ws", a.WebSocketHandler)

	return router
}
