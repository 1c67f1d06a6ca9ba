package store

import (
	"context"
	"errors"

	"codeassist/internal/models"
)

// ErrNotFound is returned when an operation references an id that is not in
// the store. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// WorkspaceStore defines the storage operations backing the workspace
// service. Deletes are idempotent: deleting an absent id is a no-op, not an
// error. Only files support partial update.
type WorkspaceStore interface {
	// User operations
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, params models.CreateUserParams) (*models.User, error)

	// File operations
	GetFile(ctx context.Context, id int) (*models.File, error)
	ListFiles(ctx context.Context) ([]models.File, error)
	CreateFile(ctx context.Context, params models.CreateFileParams) (*models.File, error)
	UpdateFile(ctx context.Context, id int, params models.UpdateFileParams) (*models.File, error)
	DeleteFile(ctx context.Context, id int) error

	// Folder operations
	GetFolder(ctx context.Context, id int) (*models.Folder, error)
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, params models.CreateFolderParams) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id int) error

	// Chat operations
	GetChatHistory(ctx context.Context, assistantType string) ([]models.ChatMessage, error)
	AddChatMessage(ctx context.Context, params models.AddChatMessageParams) (*models.ChatMessage, error)
}
