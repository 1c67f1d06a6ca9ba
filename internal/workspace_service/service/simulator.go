package service

import (
	"strings"

	"codeassist/internal/models"
)

// consoleScript is the staged output replayed, in order, for every run_code
// command.
var consoleScript = []models.ConsoleEvent{
	{Type: models.ConsoleLog, Message: "Application started"},
	{Type: models.ConsoleLog, Message: `{users: Array(3), status: "success", version: "1.0.0"}`},
	{Type: models.ConsoleError, Message: "API key is not valid (placeholder error for demo)"},
	{Type: models.ConsoleError, Message: "at fetchData (api.js:24:15)"},
	{Type: models.ConsoleError, Message: "at main (main.js:17:29)"},
}

// runCodeExplanationKey selects which prepared explanation follows a
// simulated run.
const runCodeExplanationKey = "API key is not valid"

// errorExplanations maps a runtime error to its prepared explanation popup
// payload.
var errorExplanations = map[string]models.ErrorExplanation{
	"API key is not valid": {
		Error:       "API key is not valid",
		Location:    "at fetchData (api.js:24:15)",
		Explanation: "The API is expecting a valid API key, but it received either an empty string, null, or the placeholder text 'YOUR_API_KEY'.",
		Solutions: []string{
			"Replace the placeholder API key with your actual API key",
			"If testing locally, implement a bypass for development mode",
			"Check that the API key is being properly loaded from your environment variables",
		},
	},
	"Cannot read properties of undefined": {
		Error:       "Cannot read properties of undefined (reading 'length')",
		Location:    "at processData (utils.js:42:23)",
		Explanation: "You're trying to access a property 'length' on a variable that is undefined. This often happens when you expect an array or string but receive undefined instead.",
		Solutions: []string{
			"Add a null check before accessing the property",
			"Provide a default value using the ?? or || operators",
			"Check where the variable is supposed to be initialized",
		},
	},
}

const chatGptApiKeyAdvice = "To fix the API key validation error, you should replace the placeholder key with a real API key or set up environment variables to manage your keys securely."

const chatGptApiKeyCode = `// Use environment variables for API keys
const apiKey = process.env.API_KEY || 'fallback-key';

// Or load from a configuration file
import config from './config.js';
const apiKey = config.apiKey;`

const chatGptGenericReply = "I'll help you with that! Let me know if you need any specific assistance with your code."

const claudeReply = "From an architectural perspective, I'd recommend separating your API key handling into a dedicated configuration module that can be easily tested and maintained."

// AiReply is a canned assistant answer selected by the simulator.
type AiReply struct {
	Content      string
	HasCode      bool
	Code         string
	CodeLanguage string
}

// BuildAiReply selects the canned reply for a prompt. ChatGPT answers
// questions mentioning "error" or "api key" (case-insensitive) with
// environment variable advice and a code sample; every other assistant
// answers from an architecture angle without code.
func BuildAiReply(assistantType, message string) AiReply {
	if assistantType == "chatgpt" {
		lowered := strings.ToLower(message)
		if strings.Contains(lowered, "error") || strings.Contains(lowered, "api key") {
			return AiReply{
				Content:      chatGptApiKeyAdvice,
				HasCode:      true,
				Code:         chatGptApiKeyCode,
				CodeLanguage: "javascript",
			}
		}
		return AiReply{Content: chatGptGenericReply}
	}
	return AiReply{Content: claudeReply}
}
