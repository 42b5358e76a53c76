package websocket

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	writeWait  = 10 * time.Second
	maxMsgSize = 512
)

type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
	Hub  *Hub
}

func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:   uuid.New(),
		Conn: conn,
		Hub:  hub,
	}
}

// ReadPump читает и отбрасывает входящие кадры до закрытия соединения
func (c *Client) ReadPump() {
	defer c.Hub.Unregister(c)

	c.Conn.SetReadLimit(maxMsgSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Ping отправляет контрольный кадр, мёртвое соединение отвалится по deadline
func (c *Client) Ping() {
	c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
