package chat

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func drain(c *Client) []Envelope {
	var out []Envelope
	for {
		select {
		case frame, ok := <-c.Outbound():
			if !ok {
				return out
			}
			var env Envelope
			if err := json.Unmarshal(frame, &env); err == nil {
				out = append(out, env)
			}
		default:
			return out
		}
	}
}

func TestHub_BroadcastAndSendTo(t *testing.T) {
	hub := NewHub(zap.NewNop())
	a, b := NewClient("a", 8), NewClient("b", 8)
	hub.Register(a)
	hub.Register(b)
	defer hub.Close()

	require.NoError(t, hub.Broadcast(EventReceiveMessage, Message{Text: "hi", Username: "x"}))
	require.NoError(t, hub.SendTo(a, EventClearTyping, ClearTyping{Username: AssistantName}))

	gotA, gotB := drain(a), drain(b)
	require.Len(t, gotA, 2)
	require.Len(t, gotB, 1)
	assert.Equal(t, EventReceiveMessage, gotB[0].Event)
	assert.Equal(t, EventClearTyping, gotA[1].Event)
	assert.JSONEq(t, `{"username":"AI Assistant"}`, string(gotA[1].Data))
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	slow, fast := NewClient("slow", 1), NewClient("fast", 8)
	hub.Register(slow)
	hub.Register(fast)
	defer hub.Close()

	require.NoError(t, hub.Broadcast(EventReceiveMessage, Message{Text: "1"}))
	require.NoError(t, hub.Broadcast(EventReceiveMessage, Message{Text: "2"}))

	assert.Equal(t, 1, hub.Len())
	assert.Len(t, drain(fast), 2)

	// The dropped client keeps what was queued and then sees its queue closed.
	assert.Len(t, drain(slow), 1)
	_, open := <-slow.Outbound()
	assert.False(t, open)

	// Sending to a dropped client is a no-op.
	assert.NoError(t, hub.SendTo(slow, EventReceiveMessage, Message{}))
	hub.Unregister(slow)
}

func TestClient_WritePumpStopsOnUnregister(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := NewClient("c", 4)
	hub.Register(c)

	var (
		mu     sync.Mutex
		frames int
	)
	done := make(chan error, 1)
	go func() {
		done <- c.WritePump(func(b []byte) error {
			mu.Lock()
			frames++
			mu.Unlock()
			return nil
		})
	}()

	require.NoError(t, hub.Broadcast(EventReceiveMessage, Message{Text: "x"}))
	hub.Unregister(c)
	assert.NoError(t, <-done)

	mu.Lock()
	assert.Equal(t, 1, frames)
	mu.Unlock()
}

func TestClient_WritePumpReturnsWriteError(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := NewClient("c", 4)
	hub.Register(c)
	defer hub.Close()

	boom := errors.New("broken pipe")
	require.NoError(t, hub.SendTo(c, EventReceiveMessage, Message{}))
	err := c.WritePump(func([]byte) error { return boom })
	assert.ErrorIs(t, err, boom)
}
