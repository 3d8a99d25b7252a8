package sse

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()

	client := &Client{
		ID:      "client-1",
		Channel: make(chan Event, 1),
		Topic:   "intents",
	}
	hub.Register(client)
	assert.Equal(t, 1, hub.SubscriberCount("intents"))

	hub.Broadcast("intents", Event{Type: "app.launch", Data: "button"})

	event := <-client.Channel
	assert.Equal(t, "app.launch", event.Type)
	assert.Equal(t, "button", event.Data)

	hub.Unregister(client)
	assert.Equal(t, 0, hub.SubscriberCount("intents"))

	// Channel is closed after unregister.
	_, ok := <-client.Channel
	assert.False(t, ok)
}

func TestHub_BroadcastIsTopicScoped(t *testing.T) {
	hub := NewHub()

	intents := &Client{ID: "a", Channel: make(chan Event, 1), Topic: "intents"}
	other := &Client{ID: "b", Channel: make(chan Event, 1), Topic: "other"}
	hub.Register(intents)
	hub.Register(other)

	hub.Broadcast("intents", Event{Type: "app.launch"})

	assert.Len(t, intents.Channel, 1)
	assert.Len(t, other.Channel, 0)
}

func TestHub_BroadcastSkipsFullSubscriber(t *testing.T) {
	hub := NewHub()

	client := &Client{ID: "slow", Channel: make(chan Event, 1), Topic: "intents"}
	hub.Register(client)

	// Second broadcast must not block even though the buffer is full.
	hub.Broadcast("intents", Event{Type: "one"})
	hub.Broadcast("intents", Event{Type: "two"})

	event := <-client.Channel
	assert.Equal(t, "one", event.Type)
	assert.Len(t, client.Channel, 0)
}

func TestEvent_FormatSSE(t *testing.T) {
	event := Event{
		Type: "app.launch",
		Data: map[string]interface{}{"source": "hardware_button"},
	}

	formatted := event.FormatSSE()
	require.True(t, strings.HasSuffix(formatted, "\n\n"))

	lines := strings.Split(formatted, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "event: app.launch", lines[0])

	dataJSON := strings.TrimPrefix(lines[1], "data: ")
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(dataJSON), &data))
	assert.Equal(t, "hardware_button", data["source"])
}
