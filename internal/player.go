package internal

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one live connection. It is bound to at most one room: either as
// the room's host (no Player entry) or as exactly one joined Player. The
// Room/Player pointers are the direct connection-to-session index used for
// disconnect cleanup and action authorization.
type Client struct {
	ID   string
	Conn *websocket.Conn

	Room   *Room
	Player *Player

	mu sync.Mutex
}

func NewClient(conn *websocket.Conn, id string) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
	}
}

// SafeWriteJSON serializes writes to the connection. gorilla/websocket allows
// only one concurrent writer per connection, and broadcasts fan out from
// multiple room handlers. A client with no connection (dropped, or a test
// fixture) is a no-op.
func (c *Client) SafeWriteJSON(v any) error {
	if c == nil || c.Conn == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(v)
}

func (p *Player) ToPublicPlayer() *Player {
	return &Player{
		ID:                p.ID,
		Name:              p.Name,
		Score:             p.Score,
		EvidenceSubmitted: p.EvidenceSubmitted,
		JoinedAt:          p.JoinedAt,
	}
}
