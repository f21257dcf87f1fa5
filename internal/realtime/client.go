package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/s21platform/forum-service/internal/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBufferSize = 16
)

type client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	userUUID string
	channels map[string]struct{}
}

func newClient(hub *Hub, conn *websocket.Conn, userUUID string) *client {
	return &client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		userUUID: userUUID,
		channels: make(map[string]struct{}),
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var command model.ClientCommand
		if err := json.Unmarshal(data, &command); err != nil {
			continue
		}

		switch command.Action {
		case model.ActionJoinThread:
			c.hub.join(c, model.ThreadChannel(command.ThreadID))
		case model.ActionLeaveThread:
			c.hub.leave(c, model.ThreadChannel(command.ThreadID))
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
