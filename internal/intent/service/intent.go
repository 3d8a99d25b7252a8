package service

import (
	"io"
	"net/http"
	"time"

	"github.com/answerd/answerd/internal/pkg/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicIntents is the broadcast topic for app launch intents.
const TopicIntents = "intents"

// EventAppLaunch is broadcast when a launch intent arrives.
const EventAppLaunch = "app.launch"

// IntentService accepts platform intent events (e.g. the hardware-button
// launch) and broadcasts them to subscribed clients. The broadcast is
// one-way and fire-and-forget; the service does not depend on anyone
// listening.
type IntentService struct {
	hub    *sse.Hub
	logger *zap.Logger
}

func NewIntentService(hub *sse.Hub, logger *zap.Logger) *IntentService {
	return &IntentService{
		hub:    hub,
		logger: logger,
	}
}

type LaunchIntentRequest struct {
	Source string `json:"source"`
}

// Launch records a launch intent and broadcasts it. Always 202: delivery
// is not guaranteed and the caller has nothing to wait for.
func (s *IntentService) Launch(c *gin.Context) {
	var req LaunchIntentRequest
	// Body is optional; an empty body means an unattributed launch.
	_ = c.ShouldBindJSON(&req)
	if req.Source == "" {
		req.Source = "hardware_button"
	}

	event := sse.Event{
		Type: EventAppLaunch,
		Data: gin.H{
			"source": req.Source,
			"time":   time.Now().Format(time.RFC3339),
		},
	}
	s.hub.Broadcast(TopicIntents, event)

	s.logger.Info("launch intent broadcast",
		zap.String("source", req.Source),
		zap.Int("subscribers", s.hub.SubscriberCount(TopicIntents)),
	)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// Events streams broadcast intent events to the client over SSE until the
// client disconnects.
func (s *IntentService) Events(c *gin.Context) {
	client := &sse.Client{
		ID:      uuid.New().String(),
		Channel: make(chan sse.Event, 10),
		Topic:   TopicIntents,
	}

	s.hub.Register(client)
	defer s.hub.Unregister(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	s.logger.Debug("intent stream opened", zap.String("client_id", client.ID))

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-client.Channel:
			if !ok {
				return false
			}
			_, err := io.WriteString(w, event.FormatSSE())
			return err == nil
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (s *IntentService) RegisterRoutes(r *gin.RouterGroup) {
	intents := r.Group("/intents")
	{
		intents.POST("/launch", s.Launch)
		intents.GET("/events", s.Events)
	}
}
