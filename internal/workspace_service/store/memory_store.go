package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"codeassist/internal/models"
)

// MemoryStore is a thread-safe, in-memory implementation of WorkspaceStore.
// Each entity type has its own map and its own id counter starting at 1.
// Ids are never reused after deletion. All state is lost on process restart.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[int]models.User
	files    map[int]models.File
	folders  map[int]models.Folder
	messages map[int]models.ChatMessage

	nextUserID    int
	nextFileID    int
	nextFolderID  int
	nextMessageID int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int]models.User),
		files:         make(map[int]models.File),
		folders:       make(map[int]models.Folder),
		messages:      make(map[int]models.ChatMessage),
		nextUserID:    1,
		nextFileID:    1,
		nextFolderID:  1,
		nextMessageID: 1,
	}
}

// --- User operations ---

// GetUser retrieves a user by id.
func (s *MemoryStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// CreateUser stores a new user under the next user id.
func (s *MemoryStore) CreateUser(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: params.Username,
		Password: params.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

// --- File operations ---

// GetFile retrieves a file by id.
func (s *MemoryStore) GetFile(ctx context.Context, id int) (*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("file %d: %w", id, ErrNotFound)
	}
	return &file, nil
}

// ListFiles returns all live files ordered by id.
func (s *MemoryStore) ListFiles(ctx context.Context) ([]models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]models.File, 0, len(s.files))
	for _, file := range s.files {
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

// CreateFile stores a new file under the next file id.
func (s *MemoryStore) CreateFile(ctx context.Context, params models.CreateFileParams) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := models.File{
		ID:       s.nextFileID,
		Name:     params.Name,
		Content:  params.Content,
		Language: params.Language,
		Path:     params.Path,
		UserID:   params.UserID,
		FolderID: params.FolderID,
	}
	s.nextFileID++
	s.files[file.ID] = file
	return &file, nil
}

// UpdateFile merges the non-nil fields of params onto the stored file.
// It fails with ErrNotFound if the id is absent.
func (s *MemoryStore) UpdateFile(ctx context.Context, id int, params models.UpdateFileParams) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("file %d: %w", id, ErrNotFound)
	}

	if params.Name != nil {
		file.Name = *params.Name
	}
	if params.Content != nil {
		file.Content = *params.Content
	}
	if params.Language != nil {
		file.Language = *params.Language
	}
	if params.Path != nil {
		file.Path = *params.Path
	}
	if params.FolderID != nil {
		file.FolderID = params.FolderID
	}

	s.files[id] = file
	return &file, nil
}

// DeleteFile removes a file. Deleting an absent id is a no-op.
func (s *MemoryStore) DeleteFile(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, id)
	return nil
}

// --- Folder operations ---

// GetFolder retrieves a folder by id.
func (s *MemoryStore) GetFolder(ctx context.Context, id int) (*models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, ok := s.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %d: %w", id, ErrNotFound)
	}
	return &folder, nil
}

// ListFolders returns all live folders ordered by id.
func (s *MemoryStore) ListFolders(ctx context.Context) ([]models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folders := make([]models.Folder, 0, len(s.folders))
	for _, folder := range s.folders {
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].ID < folders[j].ID })
	return folders, nil
}

// CreateFolder stores a new folder under the next folder id.
func (s *MemoryStore) CreateFolder(ctx context.Context, params models.CreateFolderParams) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder := models.Folder{
		ID:       s.nextFolderID,
		Name:     params.Name,
		Path:     params.Path,
		UserID:   params.UserID,
		ParentID: params.ParentID,
	}
	s.nextFolderID++
	s.folders[folder.ID] = folder
	return &folder, nil
}

// DeleteFolder removes a folder together with its files and subfolders,
// transitively. Deleting an absent id is a no-op.
func (s *MemoryStore) DeleteFolder(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cascadeDeleteFolder(id, make(map[int]bool))
	return nil
}

// cascadeDeleteFolder deletes the files directly inside the folder, then
// recurses into its subfolders, then deletes the folder itself. The visited
// set guarantees termination on malformed graphs (self-parent, cycles): an
// already-visited folder id is skipped instead of recursed into.
func (s *MemoryStore) cascadeDeleteFolder(id int, visited map[int]bool) {
	if visited[id] {
		return
	}
	visited[id] = true

	for fileID, file := range s.files {
		if file.FolderID != nil && *file.FolderID == id {
			delete(s.files, fileID)
		}
	}

	var children []int
	for folderID, folder := range s.folders {
		if folder.ParentID != nil && *folder.ParentID == id {
			children = append(children, folderID)
		}
	}
	sort.Ints(children)
	for _, childID := range children {
		s.cascadeDeleteFolder(childID, visited)
	}

	delete(s.folders, id)
}

// --- Chat operations ---

// GetChatHistory returns the messages for an assistant, ordered by ascending
// timestamp.
func (s *MemoryStore) GetChatHistory(ctx context.Context, assistantType string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.ChatMessage, 0)
	for _, message := range s.messages {
		if message.AssistantType == assistantType {
			messages = append(messages, message)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp != messages[j].Timestamp {
			return messages[i].Timestamp < messages[j].Timestamp
		}
		return messages[i].ID < messages[j].ID
	})
	return messages, nil
}

// AddChatMessage stores a new chat message under the next message id.
func (s *MemoryStore) AddChatMessage(ctx context.Context, params models.AddChatMessageParams) (*models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := models.ChatMessage{
		ID:            s.nextMessageID,
		Role:          params.Role,
		Content:       params.Content,
		Timestamp:     params.Timestamp,
		HasCode:       params.HasCode,
		Code:          params.Code,
		CodeLanguage:  params.CodeLanguage,
		UserID:        params.UserID,
		AssistantType: params.AssistantType,
	}
	s.nextMessageID++
	s.messages[message.ID] = message
	return &message, nil
}

// compile-time check that MemoryStore implements the WorkspaceStore interface
var _ WorkspaceStore = (*MemoryStore)(nil)
