package models

// User is a workspace account. Users come from the seed data at process
// start or from an explicit create call; there is no update or delete path.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Folder is a node in the per-user folder tree. Root folders have a nil
// ParentID.
type Folder struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	UserID   int    `json:"userId"`
	ParentID *int   `json:"parentId"`
}

// File is an editable source file. FolderID is nil for files that live
// outside any folder.
type File struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Language string `json:"language"`
	Path     string `json:"path"`
	UserID   int    `json:"userId"`
	FolderID *int   `json:"folderId"`
}

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in an assistant conversation. Timestamp is unix
// milliseconds; history is ordered by it, not by insertion order.
type ChatMessage struct {
	ID            int     `json:"id"`
	Role          string  `json:"role"`
	Content       string  `json:"content"`
	Timestamp     int64   `json:"timestamp"`
	HasCode       *bool   `json:"hasCode"`
	Code          *string `json:"code"`
	CodeLanguage  *string `json:"codeLanguage"`
	UserID        int     `json:"userId"`
	AssistantType string  `json:"assistantType"`
}

// CreateUserParams holds the fields for a new user.
type CreateUserParams struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateFileParams holds the fields for a new file. Content may legitimately
// be empty, so only the identifying fields are required.
type CreateFileParams struct {
	Name     string `json:"name" binding:"required"`
	Content  string `json:"content"`
	Language string `json:"language" binding:"required"`
	Path     string `json:"path" binding:"required"`
	UserID   int    `json:"userId" binding:"required"`
	FolderID *int   `json:"folderId"`
}

// UpdateFileParams is a partial update: nil fields are left untouched.
type UpdateFileParams struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	Language *string `json:"language"`
	Path     *string `json:"path"`
	FolderID *int    `json:"folderId"`
}

// CreateFolderParams holds the fields for a new folder. A nil ParentID
// creates a root folder.
type CreateFolderParams struct {
	Name     string `json:"name" binding:"required"`
	Path     string `json:"path" binding:"required"`
	UserID   int    `json:"userId" binding:"required"`
	ParentID *int   `json:"parentId"`
}

// AddChatMessageParams holds the fields for a new chat message. A zero
// Timestamp is defaulted to the current time by the service layer.
// AssistantType is filled from the route on the HTTP surface, so it is not
// required in the body.
type AddChatMessageParams struct {
	Role          string  `json:"role" binding:"required"`
	Content       string  `json:"content" binding:"required"`
	Timestamp     int64   `json:"timestamp"`
	HasCode       *bool   `json:"hasCode"`
	Code          *string `json:"code"`
	CodeLanguage  *string `json:"codeLanguage"`
	UserID        int     `json:"userId" binding:"required"`
	AssistantType string  `json:"assistantType"`
}
