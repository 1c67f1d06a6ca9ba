package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"codeassist/internal/models"
	"codeassist/internal/workspace_service/service"
	"codeassist/internal/workspace_service/store"
	"codeassist/pkg/logger"
)

// newTestRouter wires a full router over a fresh seeded store, with stream
// delays shrunk so websocket tests stay fast.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New("test")
	memStore := store.NewMemoryStore()
	seedUser, err := memStore.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	workspace := service.NewWorkspaceService(memStore, log)
	delays := service.Delays{
		ConsolePacing:    5 * time.Millisecond,
		ExplanationDelay: 10 * time.Millisecond,
		AiResponseDelay:  10 * time.Millisecond,
	}
	stream := service.NewStreamService(workspace, service.NewConnectionManager(), delays, seedUser.ID, log)
	apiHandler := NewAPI(workspace, stream, log)
	return SetupRouter(apiHandler, log)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFileLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/files", models.CreateFileParams{
		Name:     "new.js",
		Content:  "console.log('hi');",
		Language: "javascript",
		Path:     "/project/new.js",
		UserID:   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 on create, got %d: %s", w.Code, w.Body.String())
	}
	var created models.File
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode created file: %v", err)
	}
	if created.ID != 6 {
		t.Errorf("Expected id 6 after the 5 seeded files, got %d", created.ID)
	}

	// Read
	w = doJSON(t, router, http.MethodGet, "/api/files/6", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on get, got %d", w.Code)
	}

	// Update content only
	newContent := "console.log('bye');"
	w = doJSON(t, router, http.MethodPut, "/api/files/6", models.UpdateFileParams{Content: &newContent})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d: %s", w.Code, w.Body.String())
	}
	var updated models.File
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Content != newContent {
		t.Errorf("Expected updated content, got %q", updated.Content)
	}
	if updated.Name != "new.js" {
		t.Errorf("Update touched the name: %q", updated.Name)
	}

	// Delete, then delete again: both succeed
	for i := 0; i < 2; i++ {
		w = doJSON(t, router, http.MethodDelete, "/api/files/6", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204 on delete (attempt %d), got %d", i+1, w.Code)
		}
	}

	// Gone
	w = doJSON(t, router, http.MethodGet, "/api/files/6", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestListFiles_ReturnsSeedData(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/files", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var files []models.File
	if err := json.Unmarshal(w.Body.Bytes(), &files); err != nil {
		t.Fatalf("Failed to decode files: %v", err)
	}
	if len(files) != 5 {
		t.Errorf("Expected the 5 seeded files, got %d", len(files))
	}
}

func TestGetFile_Errors(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/files/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] == "" {
		t.Errorf("Expected an error body, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/files/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestCreateFile_RejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/files", map[string]interface{}{"content": "no name"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a payload without required fields, got %d", w.Code)
	}
}

func TestUpdateFile_UnknownIDIs404(t *testing.T) {
	router := newTestRouter(t)

	content := "anything"
	w := doJSON(t, router, http.MethodPut, "/api/files/999", models.UpdateFileParams{Content: &content})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDeleteFolder_CascadesOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Folder 1 is the seeded /project root; everything hangs off it.
	w := doJSON(t, router, http.MethodDelete, "/api/folders/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 on folder delete, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/folders", nil)
	var folders []models.Folder
	json.Unmarshal(w.Body.Bytes(), &folders)
	if len(folders) != 0 {
		t.Errorf("Expected no folders after cascade, got %d", len(folders))
	}

	w = doJSON(t, router, http.MethodGet, "/api/files", nil)
	var files []models.File
	json.Unmarshal(w.Body.Bytes(), &files)
	if len(files) != 0 {
		t.Errorf("Expected no files after cascade, got %d", len(files))
	}
}

func TestChatHistoryRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/chat/chatgpt", models.AddChatMessageParams{
		Role:    models.RoleUser,
		Content: "hello there",
		UserID:  1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 on chat post, got %d: %s", w.Code, w.Body.String())
	}
	var posted models.ChatMessage
	json.Unmarshal(w.Body.Bytes(), &posted)
	if posted.AssistantType != "chatgpt" {
		t.Errorf("Expected assistantType from the route, got %q", posted.AssistantType)
	}

	w = doJSON(t, router, http.MethodGet, "/api/chat/chatgpt", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on history get, got %d", w.Code)
	}
	var history []models.ChatMessage
	json.Unmarshal(w.Body.Bytes(), &history)
	// Seeded welcome message plus the posted one.
	if len(history) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(history))
	}
	if history[len(history)-1].Content != "hello there" {
		t.Errorf("Expected the posted message last, got %q", history[len(history)-1].Content)
	}
}
