package service

import (
	"context"
)

// PushMessage is the provider-agnostic payload for a single dispatch.
// Exactly one of Token or Topic is set, depending on the send mode.
type PushMessage struct {
	Title string
	Body  string
	Image string
	Data  map[string]string
	Token string
	Topic string
}

// TopicManagementResult reports the per-recipient outcome of a topic
// subscribe or unsubscribe call.
type TopicManagementResult struct {
	SuccessCount int
	FailureCount int
	Errors       []string
}

// PushSender defines the interface for the push-messaging provider gateway.
// Implementations must be safe for concurrent use: the client is constructed
// once at startup and shared by all in-flight operations.
type PushSender interface {
	// SendToToken delivers a message to a single device and returns the
	// provider message ID.
	SendToToken(ctx context.Context, msg *PushMessage) (string, error)

	// SendToTopic delivers a message to a named topic and returns the
	// provider message ID.
	SendToTopic(ctx context.Context, msg *PushMessage) (string, error)

	// SubscribeToTopic subscribes a single device token to a topic.
	SubscribeToTopic(ctx context.Context, token, topic string) (*TopicManagementResult, error)

	// UnsubscribeFromTopic removes a single device token from a topic.
	UnsubscribeFromTopic(ctx context.Context, token, topic string) (*TopicManagementResult, error)
}
