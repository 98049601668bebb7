package sink

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360/semserial/errors"
)

// DefaultChunkSize is the publish chunk size for messaging sinks. It stays
// well under the NATS default max payload of 1MB.
const DefaultChunkSize = 64 * 1024

// defaultFlushTimeout bounds how long Close waits for outstanding publishes.
const defaultFlushTimeout = 30 * time.Second

// NATS publishes serialized output to a subject in chunks. The connection
// belongs to the caller; Close flushes buffered output and pending publishes
// but leaves the connection open.
type NATS struct {
	conn      *nats.Conn
	subject   string
	chunkSize int
	buf       []byte
	closed    bool
}

// NATSOption configures a NATS sink.
type NATSOption func(*NATS)

// WithChunkSize overrides the publish chunk size.
func WithChunkSize(n int) NATSOption {
	return func(s *NATS) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// NewNATS returns a sink publishing to the given subject over an established
// connection.
func NewNATS(conn *nats.Conn, subject string, opts ...NATSOption) (*NATS, error) {
	if conn == nil {
		return nil, errors.WrapInvalid(fmt.Errorf("nil connection: %w", errors.ErrSinkOpen),
			"NATSSink", "NewNATS", "validate connection")
	}
	if subject == "" {
		return nil, errors.WrapInvalid(fmt.Errorf("empty subject: %w", errors.ErrSinkOpen),
			"NATSSink", "NewNATS", "validate subject")
	}

	s := &NATS{
		conn:      conn,
		subject:   subject,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Subject returns the subject this sink publishes to.
func (s *NATS) Subject() string {
	return s.subject
}

func (s *NATS) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.ErrSinkClosed
	}

	s.buf = append(s.buf, p...)
	for len(s.buf) >= s.chunkSize {
		if err := s.publish(s.buf[:s.chunkSize]); err != nil {
			return 0, err
		}
		s.buf = s.buf[s.chunkSize:]
	}
	return len(p), nil
}

func (s *NATS) publish(chunk []byte) error {
	if err := s.conn.Publish(s.subject, chunk); err != nil {
		return errors.WrapTransient(err, "NATSSink", "publish", "publish chunk")
	}
	return nil
}

// Close publishes any buffered remainder and flushes the connection.
func (s *NATS) Close() error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.closed = true

	if len(s.buf) > 0 {
		if err := s.publish(s.buf); err != nil {
			return err
		}
		s.buf = nil
	}
	if err := s.conn.Flush(); err != nil {
		return errors.WrapTransient(err, "NATSSink", "Close", "flush connection")
	}
	return nil
}

// JetStream publishes serialized output to a subject with persistence.
// Publishes are asynchronous; Close waits for every outstanding ack.
type JetStream struct {
	js           jetstream.JetStream
	subject      string
	chunkSize    int
	flushTimeout time.Duration
	buf          []byte
	closed       bool
}

// JetStreamOption configures a JetStream sink.
type JetStreamOption func(*JetStream)

// WithJSChunkSize overrides the publish chunk size.
func WithJSChunkSize(n int) JetStreamOption {
	return func(s *JetStream) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithFlushTimeout bounds how long Close waits for outstanding acks.
func WithFlushTimeout(d time.Duration) JetStreamOption {
	return func(s *JetStream) {
		if d > 0 {
			s.flushTimeout = d
		}
	}
}

// NewJetStream returns a sink publishing to the given subject through a
// JetStream context. The subject must be bound to a stream.
func NewJetStream(js jetstream.JetStream, subject string, opts ...JetStreamOption) (*JetStream, error) {
	if js == nil {
		return nil, errors.WrapInvalid(fmt.Errorf("nil JetStream context: %w", errors.ErrSinkOpen),
			"JetStreamSink", "NewJetStream", "validate context")
	}
	if subject == "" {
		return nil, errors.WrapInvalid(fmt.Errorf("empty subject: %w", errors.ErrSinkOpen),
			"JetStreamSink", "NewJetStream", "validate subject")
	}

	s := &JetStream{
		js:           js,
		subject:      subject,
		chunkSize:    DefaultChunkSize,
		flushTimeout: defaultFlushTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Subject returns the subject this sink publishes to.
func (s *JetStream) Subject() string {
	return s.subject
}

func (s *JetStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.ErrSinkClosed
	}

	s.buf = append(s.buf, p...)
	for len(s.buf) >= s.chunkSize {
		if err := s.publish(s.buf[:s.chunkSize]); err != nil {
			return 0, err
		}
		s.buf = s.buf[s.chunkSize:]
	}
	return len(p), nil
}

func (s *JetStream) publish(chunk []byte) error {
	// PublishAsync retains chunk until acked. The buffer window only ever
	// advances past published regions, so they are never written again.
	if _, err := s.js.PublishAsync(s.subject, chunk); err != nil {
		return errors.WrapTransient(err, "JetStreamSink", "publish", "publish chunk")
	}
	return nil
}

// Close publishes any buffered remainder and waits for outstanding acks.
func (s *JetStream) Close() error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.closed = true

	if len(s.buf) > 0 {
		if err := s.publish(s.buf); err != nil {
			return err
		}
		s.buf = nil
	}

	select {
	case <-s.js.PublishAsyncComplete():
		return nil
	case <-time.After(s.flushTimeout):
		return errors.WrapTransient(fmt.Errorf("flush timeout after %v", s.flushTimeout),
			"JetStreamSink", "Close", "await publish acks")
	}
}
