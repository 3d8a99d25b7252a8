package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/answerd/answerd/internal/pkg/sse"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIntentRouter() (*gin.Engine, *sse.Hub) {
	gin.SetMode(gin.TestMode)

	hub := sse.NewHub()
	svc := NewIntentService(hub, zap.NewNop())

	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))
	return router, hub
}

func TestIntentService_Launch_BroadcastsToSubscribers(t *testing.T) {
	router, hub := newTestIntentRouter()

	client := &sse.Client{
		ID:      "test-client",
		Channel: make(chan sse.Event, 1),
		Topic:   TopicIntents,
	}
	hub.Register(client)
	defer hub.Unregister(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intents/launch",
		strings.NewReader(`{"source":"hardware_button"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	require.Len(t, client.Channel, 1)
	event := <-client.Channel
	assert.Equal(t, EventAppLaunch, event.Type)

	data, ok := event.Data.(gin.H)
	require.True(t, ok)
	assert.Equal(t, "hardware_button", data["source"])
}

func TestIntentService_Launch_EmptyBodyDefaultsSource(t *testing.T) {
	router, hub := newTestIntentRouter()

	client := &sse.Client{
		ID:      "test-client",
		Channel: make(chan sse.Event, 1),
		Topic:   TopicIntents,
	}
	hub.Register(client)
	defer hub.Unregister(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intents/launch", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	event := <-client.Channel
	data, ok := event.Data.(gin.H)
	require.True(t, ok)
	assert.Equal(t, "hardware_button", data["source"])
}

func TestIntentService_Launch_NoSubscribers(t *testing.T) {
	router, _ := newTestIntentRouter()

	// Fire-and-forget: accepted even when nobody is listening.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intents/launch", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}
