package api

import (
	"github.com/gin-gonic/gin"

	"codeassist/internal/models"
)

// WebSocketHandler handles GET /ws. It upgrades the connection, registers it
// with the stream service and pumps incoming frames into the command
// dispatcher until the client goes away. Closing the connection cancels any
// emission still pending for it.
func (a *API) WebSocketHandler(c *gin.Context) {
	ws, err := a.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		a.logger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Failed to upgrade WebSocket connection")
		return
	}

	conn := a.stream.AddConnection(ws)

	go func() {
		defer a.stream.RemoveConnection(conn.ID)
		for {
			_, raw, err := ws.ReadMessage()
			if err != nil {
				return
			}
			a.stream.HandleCommand(conn, raw)
		}
	}()
}
