package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/net/websocket"
)

// Frame is the wire envelope, both directions. Inbound, Type is a client
// request ("join:restaurant") or a relayed domain event type
// ("order.created"). Outbound, Type is the broadcast name ("order:new")
// and Payload is the original event payload, unmodified.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ackPayload struct {
	Action string   `json:"action"`
	Rooms  []string `json:"rooms,omitempty"`
}

type joinRestaurantPayload struct {
	RestaurantID string `json:"restaurantId"`
}

type joinTablePayload struct {
	TableID string `json:"tableId"`
}

type leavePayload struct {
	Room string `json:"room"`
}

type publishRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// peer serializes writes to one websocket connection. The fan-out pump and
// the request/ack path share it.
type peer struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	encoder      *json.Encoder
	writeTimeout time.Duration
}

func newPeer(conn *websocket.Conn, writeTimeout time.Duration) *peer {
	return &peer{conn: conn, encoder: json.NewEncoder(conn), writeTimeout: writeTimeout}
}

func (p *peer) write(frame Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeTimeout > 0 {
		_ = p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	}
	return p.encoder.Encode(frame)
}

func (p *peer) writeError(code, message string) error {
	return p.write(Frame{Type: "error", Payload: mustJSON(errorPayload{Code: code, Message: message})})
}

func (p *peer) writeAck(action string, rooms []string) error {
	return p.write(Frame{Type: "ack", Payload: mustJSON(ackPayload{Action: action, Rooms: rooms})})
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal websocket frame payload", "err", err)
		return nil
	}
	return b
}
