// Package sink provides the byte destinations serialized output is written
// to. A Sink is a closable writer; which side calls Close is decided by the
// session binding that created it, not by the sink itself. File, buffer, and
// handle sinks cover local output; NATS, JetStream, and WebSocket sinks carry
// serialized output onto the wire.
package sink

import (
	"io"
)

// Sink is a destination for serialized bytes. Writes are synchronous; any
// buffering is internal to the sink and flushed by Close.
type Sink interface {
	io.Writer
	io.Closer
}

// writerSink adapts a caller-owned io.Writer. Close is a no-op so the
// adapted writer's lifetime stays with its owner.
type writerSink struct {
	w io.Writer
}

// ForWriter wraps an io.Writer as a Sink. Closing the sink does not touch
// the underlying writer.
func ForWriter(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *writerSink) Close() error {
	return nil
}
