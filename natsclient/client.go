// Package natsclient manages the NATS connection behind the messaging
// sinks: context-aware connect, reconnect tracking, and drain-on-close
// so buffered serialized output is flushed before the connection drops.
package natsclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360/semserial/errors"
)

// ConnectionStatus represents the state of the NATS connection
type ConnectionStatus int

// Possible connection statuses
const (
	StatusDisconnected ConnectionStatus = iota
	StatusConnecting
	StatusConnected
	StatusReconnecting
)

// String returns the string representation of ConnectionStatus
func (s ConnectionStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusReconnecting:
		return "reconnecting"
	default:
		return "unknown"
	}
}

// ErrNotConnected is returned by operations that need an established
// connection.
var ErrNotConnected = stderrors.New("not connected to NATS")

// Client manages a single NATS connection for publishing serialized
// output. It wraps connection setup, reconnect handling, and graceful
// drain so callers only deal with the connected *nats.Conn.
type Client struct {
	url      string
	status   atomic.Value // stores ConnectionStatus
	failures atomic.Int32
	logger   *slog.Logger

	// NATS connection
	conn *nats.Conn
	js   jetstream.JetStream

	// Connection options
	maxReconnects int
	reconnectWait time.Duration
	timeout       time.Duration
	drainTimeout  time.Duration
	clientName    string

	// Callbacks
	onDisconnect func(error)
	onReconnect  func()

	// Synchronization
	mu      sync.RWMutex
	closeMu sync.Mutex  // Ensures Close() runs its cleanup only once
	closed  atomic.Bool // Track if client is closed
}

// NewClient creates a new NATS client with optional configuration. An
// empty url falls back to the default local server address.
func NewClient(url string, opts ...ClientOption) (*Client, error) {
	if url == "" {
		url = nats.DefaultURL
	}

	c := &Client{
		url:    url,
		logger: slog.Default(),
		// Sensible defaults
		maxReconnects: -1, // infinite by default
		reconnectWait: 2 * time.Second,
		timeout:       5 * time.Second,
		drainTimeout:  30 * time.Second,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.WrapInvalid(err, "Client", "NewClient", "apply option")
		}
	}

	c.status.Store(StatusDisconnected)

	return c, nil
}

// URL returns the NATS server URL
func (c *Client) URL() string {
	return c.url
}

// Status returns the current connection status
func (c *Client) Status() ConnectionStatus {
	val := c.status.Load()
	if val == nil {
		return StatusDisconnected
	}
	return val.(ConnectionStatus)
}

// setStatus updates the connection status
func (c *Client) setStatus(status ConnectionStatus) {
	c.status.Store(status)
}

// IsHealthy returns true if the connection is healthy
func (c *Client) IsHealthy() bool {
	return c.Status() == StatusConnected
}

// Failures returns the number of failed connection attempts
func (c *Client) Failures() int32 {
	return c.failures.Load()
}

// Conn returns the underlying NATS connection, or nil before Connect
// succeeds. Sinks publish through this connection directly.
func (c *Client) Conn() *nats.Conn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}

// RTT returns the round-trip time to the NATS server
func (c *Client) RTT() (time.Duration, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil || !conn.IsConnected() {
		return 0, ErrNotConnected
	}

	return conn.RTT()
}

// JetStream returns the JetStream context established during Connect.
func (c *Client) JetStream() (jetstream.JetStream, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.js == nil {
		return nil, errors.WrapTransient(
			fmt.Errorf("JetStream not initialized"),
			"Client", "JetStream", "get JetStream context")
	}

	return c.js, nil
}

// buildConnectionOptions builds NATS connection options from client configuration
func (c *Client) buildConnectionOptions() []nats.Option {
	opts := []nats.Option{
		nats.MaxReconnects(c.maxReconnects),
		nats.ReconnectWait(c.reconnectWait),
		nats.Timeout(c.timeout),
		nats.DrainTimeout(c.drainTimeout),
		nats.DisconnectErrHandler(c.handleDisconnect),
		nats.ReconnectHandler(c.handleReconnect),
		nats.ClosedHandler(c.handleClosed),
		nats.ErrorHandler(c.handleError),
	}

	if c.clientName != "" {
		opts = append(opts, nats.Name(c.clientName))
	}

	return opts
}

// Connect establishes connection to NATS server
func (c *Client) Connect(ctx context.Context) error {
	c.setStatus(StatusConnecting)
	c.logger.Debug("Connecting to NATS", "url", c.url)

	// Attempt connection with context timeout
	connectDone := make(chan error, 1)
	go func() {
		conn, err := nats.Connect(c.url, c.buildConnectionOptions()...)
		if err != nil {
			connectDone <- err
			return
		}

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()

		// JetStream is optional here; core NATS publishing still works
		// when the server runs without it.
		if js, err := jetstream.New(conn); err == nil {
			c.mu.Lock()
			c.js = js
			c.mu.Unlock()
		}

		connectDone <- nil
	}()

	// Wait for connection or context cancellation
	select {
	case err := <-connectDone:
		if err != nil {
			c.failures.Add(1)
			c.setStatus(StatusDisconnected)
			return errors.WrapTransient(err, "Client", "Connect", "establish connection")
		}
	case <-ctx.Done():
		c.failures.Add(1)
		c.setStatus(StatusDisconnected)
		return errors.WrapTransient(ctx.Err(), "Client", "Connect", "connection cancelled")
	}

	c.setStatus(StatusConnected)
	c.logger.Info("Connected to NATS", "url", c.url)

	return nil
}

// WaitForConnection waits for the connection to be established
func (c *Client) WaitForConnection(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("connection timeout: %w", ctx.Err())
		case <-ticker.C:
			if c.IsHealthy() {
				return nil
			}
		}
	}
}

// Close drains and closes the NATS connection. Drain flushes buffered
// published output; the context deadline caps how long Close waits.
func (c *Client) Close(ctx context.Context) error {
	// Ensure Close() is only called once
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed.Load() {
		return nil // Already closed
	}
	c.closed.Store(true)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		c.setStatus(StatusDisconnected)
		return nil
	}

	// Close connection with drain timeout from context or default
	drainTimeout := c.drainTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < drainTimeout {
			drainTimeout = remaining
		}
	}

	var drainErr error
	drainDone := make(chan error, 1)
	go func() {
		drainDone <- c.conn.Drain()
	}()

	select {
	case err := <-drainDone:
		if err != nil {
			drainErr = errors.Wrap(err, "Client", "Close", "drain connection")
		}
	case <-time.After(drainTimeout):
		// Drain timeout, force close
		drainErr = errors.WrapTransient(
			fmt.Errorf("drain timeout after %v", drainTimeout),
			"Client", "Close", "drain timeout")
		c.logger.Error("Drain timeout, force closing", "timeout", drainTimeout)
	case <-ctx.Done():
		// Context cancelled, force close
		drainErr = errors.Wrap(ctx.Err(), "Client", "Close", "context cancelled during drain")
	}

	c.conn.Close()
	c.conn = nil
	c.js = nil

	c.setStatus(StatusDisconnected)

	return drainErr
}

// Event handlers for NATS connection
func (c *Client) handleDisconnect(_ *nats.Conn, err error) {
	if c.closed.Load() {
		return
	}
	c.setStatus(StatusReconnecting)
	c.logger.Warn("NATS disconnected", "error", err)

	c.mu.RLock()
	onDisconnect := c.onDisconnect
	c.mu.RUnlock()

	if onDisconnect != nil {
		go onDisconnect(err)
	}
}

func (c *Client) handleReconnect(conn *nats.Conn) {
	c.setStatus(StatusConnected)
	c.logger.Info("NATS reconnected", "url", conn.ConnectedUrl())

	c.mu.RLock()
	onReconnect := c.onReconnect
	c.mu.RUnlock()

	if onReconnect != nil {
		go onReconnect()
	}
}

func (c *Client) handleClosed(_ *nats.Conn) {
	if c.closed.Load() {
		return
	}
	c.setStatus(StatusDisconnected)
}

func (c *Client) handleError(_ *nats.Conn, _ *nats.Subscription, err error) {
	// Async errors (permission violations, slow consumer) are logged but
	// not treated as connection failures.
	c.logger.Error("NATS error", "error", err)
}
