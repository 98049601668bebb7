package sink

import (
	"fmt"
	"os"

	"github.com/c360/semserial/errors"
)

// File writes serialized output to a file it owns. Close closes the file
// exactly once; later writes and closes fail.
type File struct {
	f      *os.File
	closed bool
}

// NewFile creates or truncates the named file and returns a sink that owns
// it.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.WrapTransient(fmt.Errorf("%w: %w", errors.ErrSinkOpen, err),
			"FileSink", "NewFile", "create "+path)
	}
	return &File{f: f}, nil
}

// Name returns the path of the underlying file.
func (s *File) Name() string {
	return s.f.Name()
}

func (s *File) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.ErrSinkClosed
	}
	return s.f.Write(p)
}

// Close closes the underlying file.
func (s *File) Close() error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.closed = true
	if err := s.f.Close(); err != nil {
		return errors.Wrap(err, "FileSink", "Close", "close file")
	}
	return nil
}

// Handle wraps an already-open file the caller keeps responsibility for.
// Close detaches the wrapper without closing the underlying handle.
type Handle struct {
	f      *os.File
	closed bool
}

// ForHandle wraps an open file as a Sink. The caller retains ownership of
// the handle and must close it itself.
func ForHandle(f *os.File) *Handle {
	return &Handle{f: f}
}

func (s *Handle) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.ErrSinkClosed
	}
	return s.f.Write(p)
}

// Close marks the wrapper closed. The underlying handle stays open.
func (s *Handle) Close() error {
	if s.closed {
		return errors.ErrSinkClosed
	}
	s.closed = true
	return nil
}
