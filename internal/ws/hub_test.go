package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishQueuesEvent(t *testing.T) {
	hub := NewHub()

	hub.Publish("stock_updated", map[string]interface{}{"id": "P1", "stock": 3})

	select {
	case raw := <-hub.Broadcast:
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "stock_updated", msg["type"])
	default:
		t.Fatal("expected a queued broadcast message")
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub()

	// overflow the buffer with nobody draining; Publish must drop, not hang
	for i := 0; i < 200; i++ {
		hub.Publish("stock_updated", map[string]interface{}{"i": i})
	}
}

func TestPublishOnNilHub(t *testing.T) {
	var hub *Hub
	hub.Publish("noop", nil)
}
