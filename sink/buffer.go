package sink

import (
	"bytes"

	"github.com/c360/semserial/errors"
)

// Buffer collects serialized output in memory. The collected bytes stay
// readable after Close, so a session can end and the caller still retrieve
// the output.
type Buffer struct {
	buf    bytes.Buffer
	closed bool
}

// NewBuffer returns an empty in-memory sink.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (s *Buffer) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.ErrSinkClosed
	}
	return s.buf.Write(p)
}

// Close seals the buffer against further writes.
func (s *Buffer) Close() error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.closed = true
	return nil
}

// Bytes returns the collected output.
func (s *Buffer) Bytes() []byte {
	return s.buf.Bytes()
}

// String returns the collected output as a string.
func (s *Buffer) String() string {
	return s.buf.String()
}

// Len returns the number of collected bytes.
func (s *Buffer) Len() int {
	return s.buf.Len()
}
