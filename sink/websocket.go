package sink

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/c360/semserial/errors"
)

const (
	wsHandshakeTimeout = 45 * time.Second
	wsWriteTimeout     = 10 * time.Second
)

// WebSocket carries serialized output as binary messages over a websocket
// connection. The sink owns the connection from wrap onward: Close sends a
// close frame and closes it.
type WebSocket struct {
	conn   *websocket.Conn
	closed bool
}

// NewWebSocket wraps an established connection as a Sink. The sink takes
// over the connection's lifetime.
func NewWebSocket(conn *websocket.Conn) (*WebSocket, error) {
	if conn == nil {
		return nil, errors.WrapInvalid(fmt.Errorf("nil connection: %w", errors.ErrSinkOpen),
			"WebSocketSink", "NewWebSocket", "validate connection")
	}
	return &WebSocket{conn: conn}, nil
}

// DialWebSocket connects to a websocket endpoint and returns a sink owning
// the connection.
func DialWebSocket(url string) (*WebSocket, error) {
	dialer := &websocket.Dialer{
		HandshakeTimeout: wsHandshakeTimeout,
	}

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, errors.WrapTransient(fmt.Errorf("%w: %w", errors.ErrSinkOpen, err),
			"WebSocketSink", "DialWebSocket", "dial "+url)
	}
	return NewWebSocket(conn)
}

func (s *WebSocket) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.ErrSinkClosed
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, errors.WrapTransient(err, "WebSocketSink", "Write", "write message")
	}
	return len(p), nil
}

// Close sends a normal-closure frame and closes the connection.
func (s *WebSocket) Close() error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.closed = true

	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

	if err := s.conn.Close(); err != nil {
		return errors.Wrap(err, "WebSocketSink", "Close", "close connection")
	}
	return nil
}
