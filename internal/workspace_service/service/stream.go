package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"codeassist/internal/models"
	"codeassist/pkg/logger"
)

// Delays holds the pacing of the event stream simulator.
type Delays struct {
	// ConsolePacing separates consecutive console events of a run.
	ConsolePacing time.Duration
	// ExplanationDelay is the extra wait after the last console event
	// before the error explanation is emitted.
	ExplanationDelay time.Duration
	// AiResponseDelay is the wait before a canned assistant reply.
	AiResponseDelay time.Duration
}

// DefaultDelays matches the reference pacing: 200ms between console events,
// 500ms more before the explanation, 1s before an AI reply.
var DefaultDelays = Delays{
	ConsolePacing:    200 * time.Millisecond,
	ExplanationDelay: 500 * time.Millisecond,
	AiResponseDelay:  1000 * time.Millisecond,
}

// StreamService implements the per-connection command/event protocol that
// simulates code execution and AI chat. It holds no per-connection state
// beyond the open connection itself; every command is handled independently.
type StreamService struct {
	workspace *WorkspaceService
	conns     *ConnectionManager
	delays    Delays
	userID    int
	logger    *logger.Logger
}

// NewStreamService creates a new StreamService. userID attributes chat
// messages exchanged over the stream to the seeded workspace user.
func NewStreamService(workspace *WorkspaceService, conns *ConnectionManager, delays Delays, userID int, logger *logger.Logger) *StreamService {
	return &StreamService{
		workspace: workspace,
		conns:     conns,
		delays:    delays,
		userID:    userID,
		logger:    logger,
	}
}

// AddConnection registers a newly upgraded websocket connection.
func (s *StreamService) AddConnection(ws *websocket.Conn) *StreamConn {
	conn := s.conns.Add(ws)
	s.logger.WithPayload(map[string]interface{}{"connectionID": conn.ID}).Info("Stream connection opened")
	return conn
}

// RemoveConnection cancels the connection's pending emissions and closes it.
func (s *StreamService) RemoveConnection(id string) {
	s.conns.Remove(id)
	s.logger.WithPayload(map[string]interface{}{"connectionID": id}).Info("Stream connection closed")
}

// CloseAll shuts down every live connection.
func (s *StreamService) CloseAll() {
	s.conns.CloseAll()
}

// HandleCommand dispatches one raw client frame. Malformed input and handler
// panics never take the connection down; they are answered with a single
// protocol error event instead.
func (s *StreamService) HandleCommand(conn *StreamConn, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithPayload(map[string]interface{}{"connectionID": conn.ID, "panic": fmt.Sprint(r)}).Error("Recovered from panic in stream command handler")
			s.sendProtocolError(conn, "internal error handling message")
		}
	}()

	var cmd models.ClientCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		s.sendProtocolError(conn, "invalid message: expected a JSON object with a type field")
		return
	}

	switch cmd.Type {
	case models.CommandRunCode:
		s.runCode(conn)
	case models.CommandAiMessage:
		s.aiMessage(conn, cmd)
	default:
		s.sendProtocolError(conn, "unknown message type: "+cmd.Type)
	}
}

// runCode replays the canned console script on the originating connection,
// one event per pacing interval, and schedules the error explanation on an
// independent timer so it lands after the last console event.
func (s *StreamService) runCode(conn *StreamConn) {
	ctx := conn.Context()

	go func() {
		for _, event := range consoleScript {
			if !sleepCtx(ctx, s.delays.ConsolePacing) {
				return
			}
			if err := conn.Send(models.ServerEvent{Type: models.EventConsole, Data: event}); err != nil {
				return
			}
		}
	}()

	explanationAt := time.Duration(len(consoleScript))*s.delays.ConsolePacing + s.delays.ExplanationDelay
	go func() {
		if !sleepCtx(ctx, explanationAt) {
			return
		}
		explanation := errorExplanations[runCodeExplanationKey]
		if err := conn.Send(models.ServerEvent{Type: models.EventErrorExplanation, Data: explanation}); err != nil {
			return
		}
	}()
}

// aiMessage records the user's message, waits the reply delay and emits the
// canned assistant answer, recording it as well so the REST chat history
// reflects the conversation.
func (s *StreamService) aiMessage(conn *StreamConn, cmd models.ClientCommand) {
	if cmd.AssistantType == "" || cmd.Message == "" {
		s.sendProtocolError(conn, "ai_message requires assistantType and message")
		return
	}

	ctx := conn.Context()

	if _, err := s.workspace.AddChatMessage(ctx, models.AddChatMessageParams{
		Role:          models.RoleUser,
		Content:       cmd.Message,
		UserID:        s.userID,
		AssistantType: cmd.AssistantType,
	}); err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Failed to record user chat message")
	}

	go func() {
		if !sleepCtx(ctx, s.delays.AiResponseDelay) {
			return
		}

		reply := BuildAiReply(cmd.AssistantType, cmd.Message)
		response := models.AiResponse{
			Role:          models.RoleAssistant,
			Content:       reply.Content,
			Timestamp:     time.Now().UnixMilli(),
			HasCode:       reply.HasCode,
			Code:          reply.Code,
			CodeLanguage:  reply.CodeLanguage,
			AssistantType: cmd.AssistantType,
		}

		params := models.AddChatMessageParams{
			Role:          models.RoleAssistant,
			Content:       reply.Content,
			Timestamp:     response.Timestamp,
			UserID:        s.userID,
			AssistantType: cmd.AssistantType,
		}
		if reply.HasCode {
			hasCode := true
			params.HasCode = &hasCode
			params.Code = &reply.Code
			params.CodeLanguage = &reply.CodeLanguage
		}
		if _, err := s.workspace.AddChatMessage(context.Background(), params); err != nil {
			s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Failed to record assistant chat message")
		}

		if err := conn.Send(models.ServerEvent{Type: models.EventAiResponse, Data: response}); err != nil {
			return
		}
	}()
}

func (s *StreamService) sendProtocolError(conn *StreamConn, message string) {
	s.logger.WithPayload(map[string]interface{}{"connectionID": conn.ID}).Warn("Protocol error: " + message)
	if err := conn.Send(models.ServerEvent{Type: models.EventProtocolError, Message: message}); err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error()}).Debug("Failed to send protocol error event")
	}
}

// sleepCtx waits for d or until ctx is cancelled. It reports whether the
// full delay elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
