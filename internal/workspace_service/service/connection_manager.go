package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"codeassist/internal/models"
)

// StreamConn is one client connection on the event stream. Its context is
// cancelled when the connection is removed, which stops every delayed
// emission still pending for it. Writes are serialized through a mutex since
// gorilla/websocket allows only one concurrent writer.
type StreamConn struct {
	ID string

	ws     *websocket.Conn
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func newStreamConn(ws *websocket.Conn) *StreamConn {
	ctx, cancel := context.WithCancel(context.Background())
	return &StreamConn{
		ID:     uuid.New().String(),
		ws:     ws,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the connection-scoped context.
func (c *StreamConn) Context() context.Context {
	return c.ctx
}

// Send writes one event to the connection. It refuses to write after the
// connection has been closed.
func (c *StreamConn) Send(event models.ServerEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
	}
	return c.ws.WriteJSON(event)
}

func (c *StreamConn) close() {
	c.cancel()
	c.ws.Close()
}

// ConnectionManager tracks the live event stream connections.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[string]*StreamConn
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*StreamConn),
	}
}

// Add registers a newly upgraded websocket connection and returns its
// stream handle.
func (m *ConnectionManager) Add(ws *websocket.Conn) *StreamConn {
	conn := newStreamConn(ws)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn.ID] = conn
	return conn
}

// Remove cancels the connection's pending emissions and closes its socket.
// Removing an unknown id is a no-op.
func (m *ConnectionManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if conn, ok := m.connections[id]; ok {
		conn.close()
		delete(m.connections, id)
	}
}

// Count returns the number of live connections.
func (m *ConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// CloseAll shuts down every live connection. Used on process shutdown.
func (m *ConnectionManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, conn := range m.connections {
		conn.close()
		delete(m.connections, id)
	}
}
