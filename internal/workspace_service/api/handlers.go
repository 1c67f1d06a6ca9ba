package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"codeassist/internal/models"
	"codeassist/internal/workspace_service/service"
	"codeassist/internal/workspace_service/store"
	"codeassist/pkg/logger"
)

// API provides the HTTP and WebSocket handlers for the workspace service.
type API struct {
	workspace *service.WorkspaceService
	stream    *service.StreamService
	logger    *logger.Logger
	upgrader  websocket.Upgrader
}

// NewAPI creates a new API handler.
func NewAPI(workspace *service.WorkspaceService, stream *service.StreamService, logger *logger.Logger) *API {
	return &API{
		workspace: workspace,
		stream:    stream,
		logger:    logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // CORS policy is enforced by the outer middleware.
			},
		},
	}
}

// pathID parses the numeric :id route parameter. A non-numeric id is
// reported as a 400 and ok is false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// --- Files ---

// ListFilesHandler handles GET /api/files.
func (a *API) ListFilesHandler(c *gin.Context) {
	files, err := a.workspace.ListFiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}
	c.JSON(http.StatusOK, files)
}

// CreateFileHandler handles POST /api/files.
func (a *API) CreateFileHandler(c *gin.Context) {
	var params models.CreateFileParams
	if err := c.ShouldBindJSON(&params); err != nil {
		a.logger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Invalid create file payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	file, err := a.workspace.CreateFile(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create file"})
		return
	}
	c.JSON(http.StatusCreated, file)
}

// GetFileHandler handles GET /api/files/:id.
func (a *API) GetFileHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	file, err := a.workspace.GetFile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}
	c.JSON(http.StatusOK, file)
}

// UpdateFileHandler handles PUT /api/files/:id.
func (a *API) UpdateFileHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var params models.UpdateFileParams
	if err := c.ShouldBindJSON(&params); err != nil {
		a.logger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Invalid update file payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	file, err := a.workspace.UpdateFile(c.Request.Context(), id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update file"})
		return
	}
	c.JSON(http.StatusOK, file)
}

// DeleteFileHandler handles DELETE /api/files/:id. Deleting an unknown id
// still succeeds with 204.
func (a *API) DeleteFileHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.workspace.DeleteFile(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Folders ---

// ListFoldersHandler handles GET /api/folders.
func (a *API) ListFoldersHandler(c *gin.Context) {
	folders, err := a.workspace.ListFolders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}
	c.JSON(http.StatusOK, folders)
}

// CreateFolderHandler handles POST /api/folders.
func (a *API) CreateFolderHandler(c *gin.Context) {
	var params models.CreateFolderParams
	if err := c.ShouldBindJSON(&params); err != nil {
		a.logger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Invalid create folder payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	folder, err := a.workspace.CreateFolder(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// DeleteFolderHandler handles DELETE /api/folders/:id. The delete cascades
// to every file and subfolder inside the folder.
func (a *API) DeleteFolderHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.workspace.DeleteFolder(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete folder"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Chat ---

// GetChatHistoryHandler handles GET /api/chat/:type.
func (a *API) GetChatHistoryHandler(c *gin.Context) {
	messages, err := a.workspace.GetChatHistory(c.Request.Context(), c.Param("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// AddChatMessageHandler handles POST /api/chat/:type. The assistant type is
// taken from the route, overriding anything in the body.
func (a *API) AddChatMessageHandler(c *gin.Context) {
	var params models.AddChatMessageParams
	if err := c.ShouldBindJSON(&params); err != nil {
		a.logger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Invalid chat message payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	params.AssistantType = c.Param("type")

	message, err := a.workspace.AddChatMessage(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add chat message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}
