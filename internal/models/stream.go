package models

// Client command types accepted on the event stream.
const (
	CommandRunCode   = "run_code"
	CommandAiMessage = "ai_message"
)

// Server event types emitted on the event stream.
const (
	EventConsole          = "console"
	EventErrorExplanation = "error_explanation"
	EventAiResponse       = "ai_response"
	EventProtocolError    = "error"
)

// Console output subtypes.
const (
	ConsoleLog   = "log"
	ConsoleError = "error"
)

// ClientCommand is the envelope for every message received on the stream.
// Unknown or missing Type values are answered with a protocol error event.
type ClientCommand struct {
	Type          string `json:"type"`
	AssistantType string `json:"assistantType,omitempty"`
	Message       string `json:"message,omitempty"`
}

// ServerEvent is the envelope for every message sent on the stream. Data
// carries the typed payload for console, error_explanation and ai_response
// events; Message carries the text of a protocol error.
type ServerEvent struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ConsoleEvent is one line of simulated program output.
type ConsoleEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorExplanation is the structured popup payload emitted after a simulated
// run fails.
type ErrorExplanation struct {
	Error       string   `json:"error"`
	Location    string   `json:"location"`
	Explanation string   `json:"explanation"`
	Solutions   []string `json:"solutions"`
}

// AiResponse is the payload of an ai_response event.
type AiResponse struct {
	Role          string `json:"role"`
	Content       string `json:"content"`
	Timestamp     int64  `json:"timestamp"`
	HasCode       bool   `json:"hasCode"`
	Code          string `json:"code,omitempty"`
	CodeLanguage  string `json:"codeLanguage,omitempty"`
	AssistantType string `json:"assistantType"`
}
