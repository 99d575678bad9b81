package websocket

import (
	"sync"

	"github.com/gorilla/websocket"

	"influmarket/pkg/logger"
)

const sendBufferSize = 256

// Client is one websocket connection belonging to an authenticated user. A
// user may hold several clients at once (multiple tabs or devices).
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	closeOnce sync.Once
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, sendBufferSize),
	}
}

// Close shuts the send channel exactly once, no matter how many paths race to
// tear the connection down.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.Send)
	})
}

// Enqueue hands a frame to the write pump without blocking. A client whose
// buffer is full is considered stalled and loses the frame.
func (c *Client) Enqueue(message []byte) bool {
	select {
	case c.Send <- message:
		return true
	default:
		logger.Warn("Dropping frame for slow client %s", c.UserID)
		return false
	}
}

// ReadPump consumes frames from the connection and hands each one to the
// handler. It owns teardown: when the read loop exits for any reason, the
// registry forgets the client and every room it joined.
func (c *Client) ReadPump(registry *Registry, handler EventHandler) {
	defer func() {
		registry.RemoveClient(c)
		c.Close()
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("Websocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		handler.HandleEvent(c, message)
	}
}

// WritePump drains the send channel onto the connection until the channel is
// closed or a write fails.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("Websocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}

// EventHandler dispatches one inbound frame. Implementations live above this
// package so room and message semantics stay out of the transport.
type EventHandler interface {
	HandleEvent(client *Client, message []byte)
}
