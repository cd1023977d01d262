package service

import (
	"context"
)

// DispatchEvent describes a completed dispatch for downstream consumers
// (delivery analytics, audit pipelines). It is published after the record's
// terminal status is written and never affects the dispatch result.
type DispatchEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	Token          string `json:"fcm_token,omitempty"`
	Topic          string `json:"topic,omitempty"`
	MessageID      string `json:"message_id"`
	Status         string `json:"status"`
}

// EventPublisher defines the interface for publishing dispatch events to a
// message queue.
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
