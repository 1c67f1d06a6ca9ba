package service

import (
	"context"
	"errors"
	"time"

	"codeassist/internal/models"
	"codeassist/internal/workspace_service/store"
	"codeassist/pkg/logger"
)

// ErrValidation is returned when a request payload is structurally invalid.
// Callers match it with errors.Is.
var ErrValidation = errors.New("validation failed")

// WorkspaceService provides the typed access layer over the workspace store.
// It is used identically by the HTTP handlers and the event stream.
type WorkspaceService struct {
	store  store.WorkspaceStore
	logger *logger.Logger
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(store store.WorkspaceStore, logger *logger.Logger) *WorkspaceService {
	return &WorkspaceService{
		store:  store,
		logger: logger,
	}
}

// ListFiles returns all files in the workspace.
func (s *WorkspaceService) ListFiles(ctx context.Context) ([]models.File, error) {
	files, err := s.store.ListFiles(ctx)
	if err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to list files")
		return nil, err
	}
	return files, nil
}

// GetFile returns a single file by id.
func (s *WorkspaceService) GetFile(ctx context.Context, id int) (*models.File, error) {
	return s.store.GetFile(ctx, id)
}

// CreateFile creates a new file.
func (s *WorkspaceService) CreateFile(ctx context.Context, params models.CreateFileParams) (*models.File, error) {
	file, err := s.store.CreateFile(ctx, params)
	if err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to create file")
		return nil, err
	}
	return file, nil
}

// UpdateFile merges the given partial fields onto an existing file.
func (s *WorkspaceService) UpdateFile(ctx context.Context, id int, params models.UpdateFileParams) (*models.File, error) {
	file, err := s.store.UpdateFile(ctx, id, params)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.WithError(models.ErrorInfo{Message: err.Error()}).WithPayload(map[string]interface{}{"fileID": id}).Error("Failed to update file")
		}
		return nil, err
	}
	return file, nil
}

// DeleteFile removes a file. Deleting an unknown id succeeds as a no-op.
func (s *WorkspaceService) DeleteFile(ctx context.Context, id int) error {
	return s.store.DeleteFile(ctx, id)
}

// ListFolders returns all folders in the workspace.
func (s *WorkspaceService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.store.ListFolders(ctx)
	if err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to list folders")
		return nil, err
	}
	return folders, nil
}

// CreateFolder creates a new folder.
func (s *WorkspaceService) CreateFolder(ctx context.Context, params models.CreateFolderParams) (*models.Folder, error) {
	folder, err := s.store.CreateFolder(ctx, params)
	if err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to create folder")
		return nil, err
	}
	return folder, nil
}

// DeleteFolder removes a folder and, transitively, everything inside it.
// The cascade is not atomic: a failure partway through leaves the already
// deleted part deleted.
func (s *WorkspaceService) DeleteFolder(ctx context.Context, id int) error {
	if err := s.store.DeleteFolder(ctx, id); err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).WithPayload(map[string]interface{}{"folderID": id}).Error("Folder cascade delete failed")
		return err
	}
	return nil
}

// GetChatHistory returns the conversation for one assistant, ordered by
// ascending timestamp.
func (s *WorkspaceService) GetChatHistory(ctx context.Context, assistantType string) ([]models.ChatMessage, error) {
	if assistantType == "" {
		return nil, ErrValidation
	}
	messages, err := s.store.GetChatHistory(ctx, assistantType)
	if err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to get chat history")
		return nil, err
	}
	return messages, nil
}

// AddChatMessage appends a message to an assistant conversation. A zero
// timestamp is defaulted to the current time.
func (s *WorkspaceService) AddChatMessage(ctx context.Context, params models.AddChatMessageParams) (*models.ChatMessage, error) {
	if params.AssistantType == "" || params.Role == "" || params.Content == "" {
		return nil, ErrValidation
	}
	if params.Timestamp == 0 {
		params.Timestamp = time.Now().UnixMilli()
	}
	message, err := s.store.AddChatMessage(ctx, params)
	if err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to add chat message")
		return nil, err
	}
	return message, nil
}
