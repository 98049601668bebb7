package natsclient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestIntegration_ConnectLifecycle runs the full connect, wait, drain,
// close cycle against a real NATS server.
func TestIntegration_ConnectLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	natsContainer, natsURL := startNATSContainer(ctx, t)
	defer natsContainer.Terminate(ctx)

	client, err := NewClient(natsURL,
		WithName("natsclient-test"),
		WithTimeout(5*time.Second),
		WithDrainTimeout(5*time.Second),
	)
	require.NoError(t, err)

	require.NoError(t, client.Connect(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	require.NoError(t, client.WaitForConnection(waitCtx))

	assert.True(t, client.IsHealthy())
	assert.Equal(t, StatusConnected, client.Status())
	require.NotNil(t, client.Conn())

	rtt, err := client.RTT()
	require.NoError(t, err)
	assert.Greater(t, rtt, time.Duration(0))

	js, err := client.JetStream()
	require.NoError(t, err)
	assert.NotNil(t, js)

	require.NoError(t, client.Close(ctx))
	assert.Equal(t, StatusDisconnected, client.Status())
	assert.Nil(t, client.Conn())

	// Close is idempotent after a real connection too
	require.NoError(t, client.Close(ctx))
}

// TestIntegration_DrainFlushesPublished verifies that messages published
// through the managed connection are delivered before Close returns.
func TestIntegration_DrainFlushesPublished(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	natsContainer, natsURL := startNATSContainer(ctx, t)
	defer natsContainer.Terminate(ctx)

	client, err := NewClient(natsURL, WithTimeout(5*time.Second))
	require.NoError(t, err)
	require.NoError(t, client.Connect(ctx))

	received := make(chan []byte, 1)
	sub, err := client.Conn().Subscribe("drain.check", func(msg *nats.Msg) {
		received <- msg.Data
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.Conn().Publish("drain.check", []byte("tail chunk")))
	require.NoError(t, client.Close(ctx))

	select {
	case data := <-received:
		assert.Equal(t, []byte("tail chunk"), data)
	case <-time.After(2 * time.Second):
		t.Fatal("published message was not delivered before close")
	}
}

// Helper function to start a NATS container
func startNATSContainer(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	req := testcontainers.ContainerRequest{
		Image:        "nats:latest",
		ExposedPorts: []string{"4222/tcp"},
		WaitingFor:   wait.ForListeningPort("4222/tcp"),
	}

	natsContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := natsContainer.Host(ctx)
	require.NoError(t, err)

	port, err := natsContainer.MappedPort(ctx, "4222")
	require.NoError(t, err)

	natsURL := fmt.Sprintf("nats://%s:%s", host, port.Port())

	// Wait for NATS to be fully ready
	time.Sleep(100 * time.Millisecond)

	return natsContainer, natsURL
}
