package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/c360/semserial/errors"
)

func TestForWriter(t *testing.T) {
	var buf bytes.Buffer
	s := ForWriter(&buf)

	n, err := s.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	// Close must not touch the adapted writer.
	require.NoError(t, s.Close())
	assert.Equal(t, "hello", buf.String())

	_, err = buf.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", buf.String())
}

func TestFile_WriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nt")

	s, err := NewFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name())

	_, err = s.Write([]byte("triple data\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "triple data\n", string(content))
}

func TestFile_ClosedGuards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nt")
	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Close()
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkClosed))

	_, err = s.Write([]byte("x"))
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkClosed))
}

func TestNewFile_BadPath(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "missing", "out.nt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkOpen))
	assert.True(t, pkgerrors.IsTransient(err))
}

func TestHandle_LeavesFileOpen(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.nt"))
	require.NoError(t, err)
	defer f.Close()

	s := ForHandle(f)
	_, err = s.Write([]byte("first"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// The wrapper is closed but the handle must stay usable.
	_, err = f.WriteString(" second")
	require.NoError(t, err)

	_, err = s.Write([]byte("x"))
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkClosed))
	assert.True(t, errors.Is(s.Close(), pkgerrors.ErrSinkClosed))
}

func TestBuffer(t *testing.T) {
	s := NewBuffer()

	n, err := s.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.Close())

	// Contents stay readable after close.
	assert.Equal(t, []byte("abc"), s.Bytes())
	assert.Equal(t, "abc", s.String())

	_, err = s.Write([]byte("d"))
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkClosed))
	assert.True(t, errors.Is(s.Close(), pkgerrors.ErrSinkClosed))
}

func TestNewNATS_NilConn(t *testing.T) {
	_, err := NewNATS(nil, "out.triples")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkOpen))
	assert.True(t, pkgerrors.IsInvalid(err))
}

func TestNewJetStream_NilContext(t *testing.T) {
	_, err := NewJetStream(nil, "out.triples")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkOpen))
	assert.True(t, pkgerrors.IsInvalid(err))
}

func TestNewWebSocket_NilConn(t *testing.T) {
	_, err := NewWebSocket(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkOpen))
}
