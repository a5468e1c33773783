package services

import (
	"encoding/json"
	"sync"

	"github.com/mekbib/bingo-gateway/utils/logger"

	"github.com/gorilla/websocket"
)

// Client is one connected browser session.
type Client struct {
	id   string
	conn *websocket.Conn
	hub  *Hub
	send chan []byte
	once sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// clientAction is the inbound browser message.
type clientAction struct {
	Action string `json:"action"`
	Number int    `json:"number,omitempty"`
}

func (c *Client) readPump() {
	defer c.hub.removeClient(c.id)

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[client %s] closed", c.id)
			} else {
				logger.Errorf("[client %s] read: %v", c.id, err)
			}
			return
		}

		var act clientAction
		if err := json.Unmarshal(message, &act); err != nil {
			logger.Warnf("[client %s] invalid message: %v", c.id, err)
			continue
		}

		rs := c.hub.roundService()
		if rs == nil {
			continue
		}
		switch act.Action {
		case "mark":
			rs.ToggleMark(act.Number)
		case "bingo":
			rs.SubmitClaim()
		case "leave":
			rs.Leave()
		case "audio":
			rs.ToggleAudio()
		default:
			logger.Warnf("[client %s] unknown action %q", c.id, act.Action)
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Errorf("[client %s] write: %v", c.id, err)
			return
		}
	}
}
