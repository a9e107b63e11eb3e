package mailqueue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	require.NoError(t, q.Publish(ctx, Message{Type: "email", Body: []byte("first")}))
	require.NoError(t, q.Publish(ctx, Message{Type: "email", Body: []byte("second")}))

	messages, err := q.Consume(ctx)
	require.NoError(t, err)

	first := <-messages
	assert.Equal(t, "email", first.Type)
	assert.Equal(t, []byte("first"), first.Body)

	second := <-messages
	assert.Equal(t, []byte("second"), second.Body)
}

func TestInMemoryConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := NewInMemory(1)
	messages, err := q.Consume(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-messages:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(time.Second):
		t.Fatal("consume channel did not close after cancel")
	}
}

func TestInMemoryPublishBlocksUntilCancel(t *testing.T) {
	q := NewInMemory(1)
	require.NoError(t, q.Publish(context.Background(), Message{Body: []byte("fills the buffer")}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := q.Publish(ctx, Message{Body: []byte("overflow")})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSerializeRoundTrip(t *testing.T) {
	msg := Message{Type: "email", Body: []byte(`{"to":"a@b.c"}`)}

	got, ok := deserialize(serialize(msg))
	require.True(t, ok)
	assert.Equal(t, msg.Type, got.Type)
	assert.Equal(t, msg.Body, got.Body)

	// Untyped payloads still come back as a message.
	got, ok = deserialize("no-separator")
	require.True(t, ok)
	assert.Equal(t, "", got.Type)
	assert.Equal(t, []byte("no-separator"), got.Body)
}
