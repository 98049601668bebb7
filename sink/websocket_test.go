package sink

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/c360/semserial/errors"
)

func TestWebSocket_WriteAndClose(t *testing.T) {
	received := make(chan []byte, 4)

	upgrader := websocket.Upgrader{
		CheckOrigin: func(_ *http.Request) bool { return true },
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("Upgrade error: %v", err)
			return
		}
		defer conn.Close()

		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType == websocket.BinaryMessage {
				received <- data
			}
		}
	}))
	defer server.Close()

	wsURL := "ws" + server.URL[4:] // Replace http with ws
	s, err := DialWebSocket(wsURL)
	require.NoError(t, err)

	n, err := s.Write([]byte("triple data"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	select {
	case data := <-received:
		assert.Equal(t, []byte("triple data"), data)
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for message")
	}

	require.NoError(t, s.Close())

	_, err = s.Write([]byte("x"))
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkClosed))
	assert.True(t, errors.Is(s.Close(), pkgerrors.ErrSinkClosed))
}

func TestDialWebSocket_BadEndpoint(t *testing.T) {
	_, err := DialWebSocket("ws://127.0.0.1:1/ws")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrSinkOpen))
	assert.True(t, pkgerrors.IsTransient(err))
}
