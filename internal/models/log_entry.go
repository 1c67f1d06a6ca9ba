package models

// RequestInfo carries the HTTP request context attached to a log entry.
type RequestInfo struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	RemoteAddr string `json:"remote_addr"`
	StatusCode int    `json:"status_code,omitempty"`
}

// ErrorInfo carries structured error details attached to a log entry.
type ErrorInfo struct {
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}
