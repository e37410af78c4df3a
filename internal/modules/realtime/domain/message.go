package domain

import (
	"strings"
	"time"
)

const (
	SystemEntity = "system"

	TopicSystemConnected = SystemEntity + ".connected"
	TopicSystemPong      = SystemEntity + ".pong"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionInvalid   = "invalidated"
)

// Message representa el evento de dominio que viaja entre Kafka y WebSocket.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// EntityTopic returns the canonical topic for an entity and action pair.
func EntityTopic(entity, action string) string {
	entity = strings.ToLower(strings.TrimSpace(entity))
	action = strings.ToLower(strings.TrimSpace(action))
	if entity == "" || action == "" {
		return ""
	}
	return entity + "." + action
}

// NewEvento builds a broadcast-ready message for an entity change.
func NewEvento(entity, action, resourceID string, data any) *Message {
	return &Message{
		Topic:      EntityTopic(entity, action),
		Entity:     strings.ToLower(strings.TrimSpace(entity)),
		Action:     strings.ToLower(strings.TrimSpace(action)),
		ResourceID: strings.TrimSpace(resourceID),
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}
