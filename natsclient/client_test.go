package natsclient

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test basic client creation
func TestNewClient(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)

	assert.NotNil(t, client)
	assert.Equal(t, "nats://localhost:4222", client.URL())
	assert.Equal(t, StatusDisconnected, client.Status())
	assert.False(t, client.IsHealthy())
	assert.Nil(t, client.Conn())
}

// Test empty URL falls back to the default server address
func TestNewClient_DefaultURL(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)

	assert.Equal(t, nats.DefaultURL, client.URL())
}

// Test functional options are applied
func TestNewClient_Options(t *testing.T) {
	var disconnects, reconnects int
	logger := slog.Default()

	client, err := NewClient("nats://localhost:4222",
		WithMaxReconnects(3),
		WithReconnectWait(500*time.Millisecond),
		WithTimeout(time.Second),
		WithDrainTimeout(2*time.Second),
		WithName("serializer"),
		WithLogger(logger),
		WithDisconnectCallback(func(error) { disconnects++ }),
		WithReconnectCallback(func() { reconnects++ }),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, client.maxReconnects)
	assert.Equal(t, 500*time.Millisecond, client.reconnectWait)
	assert.Equal(t, time.Second, client.timeout)
	assert.Equal(t, 2*time.Second, client.drainTimeout)
	assert.Equal(t, "serializer", client.clientName)
	assert.NotNil(t, client.onDisconnect)
	assert.NotNil(t, client.onReconnect)
}

// Test nil logger restores the default
func TestNewClient_NilLogger(t *testing.T) {
	client, err := NewClient("nats://localhost:4222", WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, client.logger)
}

func TestConnectionStatus_String(t *testing.T) {
	tests := []struct {
		status ConnectionStatus
		want   string
	}{
		{StatusDisconnected, "disconnected"},
		{StatusConnecting, "connecting"},
		{StatusConnected, "connected"},
		{StatusReconnecting, "reconnecting"},
		{ConnectionStatus(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

// Test status transitions
func TestStatus_Transitions(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)

	client.setStatus(StatusConnecting)
	assert.Equal(t, StatusConnecting, client.Status())
	assert.False(t, client.IsHealthy())

	client.setStatus(StatusConnected)
	assert.Equal(t, StatusConnected, client.Status())
	assert.True(t, client.IsHealthy())

	client.setStatus(StatusReconnecting)
	assert.Equal(t, StatusReconnecting, client.Status())
	assert.False(t, client.IsHealthy())
}

// Test connect with an already-cancelled context fails fast and records
// the failure
func TestConnect_ContextCancelled(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", WithTimeout(100*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = client.Connect(ctx)
	require.Error(t, err)
	assert.Equal(t, StatusDisconnected, client.Status())
	assert.Equal(t, int32(1), client.Failures())
}

func TestWaitForConnection_Timeout(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = client.WaitForConnection(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWaitForConnection_AlreadyConnected(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)
	client.setStatus(StatusConnected)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, client.WaitForConnection(ctx))
}

// Test Close before Connect is a no-op and stays idempotent
func TestClose_Idempotent(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, client.Close(ctx))
	assert.NoError(t, client.Close(ctx))
	assert.Equal(t, StatusDisconnected, client.Status())
}

func TestJetStream_NotInitialized(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)

	js, err := client.JetStream()
	assert.Error(t, err)
	assert.Nil(t, js)
}

func TestRTT_NotConnected(t *testing.T) {
	client, err := NewClient("nats://localhost:4222")
	require.NoError(t, err)

	_, err = client.RTT()
	assert.ErrorIs(t, err, ErrNotConnected)
}
