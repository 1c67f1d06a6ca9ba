package store

import (
	"context"
	"fmt"
	"time"

	"codeassist/internal/models"
)

const mainJsContent = `// Main application entry point
import { initializeApp } from './utils.js';
import { fetchData } from './api.js';

/**
 * Configuration for the application
 * @type {Object}
 */
const config = {
  apiKey: 'YOUR_API_KEY',
  environment: 'development',
  debug: true
};

async function main() {
  try {
    const app = initializeApp(config);
    const data = await fetchData('/users');
    console.log('Application started', data);
  } catch (error) {
    console.error('Failed to start application:', error);
  }
}`

const utilsJsContent = `// Utility functions for the application
export function initializeApp(config) {
  console.log('Initializing app with config:', config);

  if (!config || !config.apiKey) {
    throw new Error('Invalid configuration: API key is required');
  }

  return {
    name: 'MyApp',
    version: '1.0.0',
    config
  };
}

export function formatDate(date) {
  return new Date(date).toLocaleDateString('en-US');
}`

// apiJsContent holds backtick template literals, so it cannot be a raw string.
const apiJsContent = "// API interactions\n" +
	"export async function fetchData(endpoint) {\n" +
	"  console.log(`Fetching data from ${endpoint}`);\n" +
	"  \n" +
	"  // Validate API key\n" +
	"  const apiKey = sessionStorage.getItem('apiKey') || 'YOUR_API_KEY';\n" +
	"  \n" +
	"  if (apiKey === 'YOUR_API_KEY') {\n" +
	"    throw new Error('API key is not valid (placeholder error for demo)');\n" +
	"  }\n" +
	"  \n" +
	"  // Simulate API call\n" +
	"  return new Promise((resolve) => {\n" +
	"    setTimeout(() => {\n" +
	"      resolve({\n" +
	"        users: [\n" +
	"          { id: 1, name: 'User 1' },\n" +
	"          { id: 2, name: 'User 2' },\n" +
	"          { id: 3, name: 'User 3' },\n" +
	"        ],\n" +
	"        status: 'success',\n" +
	"        version: '1.0.0'\n" +
	"      });\n" +
	"    }, 500);\n" +
	"  });\n" +
	"}"

const readmeContent = "# Project\n\nThis is a sample project."

const packageJsonContent = `{
  "name": "sample-project",
  "version": "1.0.0",
  "main": "src/main.js",
  "dependencies": {
    "express": "^4.17.1"
  }
}`

const chatGptWelcome = "Hello! I'm your AI coding assistant. How can I help you with your project today?"

const claudeWelcome = "Hi there! I'm Claude, your AI architecture assistant. I can help with code organization, design patterns, and best practices. What are you working on?"

// Seed populates the store with the demo workspace: one user, a three-level
// folder tree, five files and a welcome message per assistant. It returns
// the seeded user so callers can attribute later activity to it.
func (s *MemoryStore) Seed(ctx context.Context) (*models.User, error) {
	user, err := s.CreateUser(ctx, models.CreateUserParams{
		Username: "testuser",
		Password: "password",
	})
	if err != nil {
		return nil, fmt.Errorf("seeding user: %w", err)
	}

	projectFolder, err := s.CreateFolder(ctx, models.CreateFolderParams{
		Name:   "project",
		Path:   "/project",
		UserID: user.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("seeding folders: %w", err)
	}
	srcFolder, err := s.CreateFolder(ctx, models.CreateFolderParams{
		Name:     "src",
		Path:     "/project/src",
		UserID:   user.ID,
		ParentID: &projectFolder.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("seeding folders: %w", err)
	}
	_, err = s.CreateFolder(ctx, models.CreateFolderParams{
		Name:     "components",
		Path:     "/project/src/components",
		UserID:   user.ID,
		ParentID: &srcFolder.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("seeding folders: %w", err)
	}

	seedFiles := []models.CreateFileParams{
		{Name: "main.js", Content: mainJsContent, Language: "javascript", Path: "/project/src/main.js", UserID: user.ID, FolderID: &srcFolder.ID},
		{Name: "utils.js", Content: utilsJsContent, Language: "javascript", Path: "/project/src/utils.js", UserID: user.ID, FolderID: &srcFolder.ID},
		{Name: "api.js", Content: apiJsContent, Language: "javascript", Path: "/project/src/api.js", UserID: user.ID, FolderID: &srcFolder.ID},
		{Name: "README.md", Content: readmeContent, Language: "markdown", Path: "/project/README.md", UserID: user.ID, FolderID: &projectFolder.ID},
		{Name: "package.json", Content: packageJsonContent, Language: "json", Path: "/project/package.json", UserID: user.ID, FolderID: &projectFolder.ID},
	}
	for _, params := range seedFiles {
		if _, err := s.CreateFile(ctx, params); err != nil {
			return nil, fmt.Errorf("seeding file %s: %w", params.Name, err)
		}
	}

	now := time.Now().UnixMilli()
	welcomes := []models.AddChatMessageParams{
		{Role: models.RoleSystem, Content: chatGptWelcome, Timestamp: now, UserID: user.ID, AssistantType: "chatgpt"},
		{Role: models.RoleSystem, Content: claudeWelcome, Timestamp: now, UserID: user.ID, AssistantType: "claude"},
	}
	for _, params := range welcomes {
		if _, err := s.AddChatMessage(ctx, params); err != nil {
			return nil, fmt.Errorf("seeding chat for %s: %w", params.AssistantType, err)
		}
	}

	return user, nil
}
