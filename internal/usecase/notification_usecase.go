// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/repository"

	"github.com/google/uuid"
)

// SendInput carries a single-device send request. RequestID is assigned by
// the transport layer and travels into dispatch events, never request bodies.
type SendInput struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Token     string            `json:"fcm_token"`
	Image     string            `json:"image,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	RequestID string            `json:"-"`
}

// TopicSendInput carries a topic send request.
type TopicSendInput struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Topic     string            `json:"topic"`
	Image     string            `json:"image,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	RequestID string            `json:"-"`
}

// SendResult summarizes the outcome of a send or subscription operation with
// per-recipient counters. For single sends the counters always sum to one.
type SendResult struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Messages     []string `json:"messages,omitempty"`
}

// TopicSendResult is the outcome of a successful topic send.
type TopicSendResult struct {
	MessageID string `json:"message_id"`
	Topic     string `json:"topic"`
}

// ListInput carries pagination and filtering for notification list queries.
type ListInput struct {
	Skip   int
	Take   int
	Filter *repository.NotificationFilter
}

// NotificationUsecase defines the dispatch workflow and its supporting read
// operations.
//
// The error contract is deliberately asymmetric: Send absorbs every failure
// into its result counters and never returns an error, while the remaining
// dispatch operations log and propagate failures for the transport layer to
// format.
type NotificationUsecase interface {
	// Send dispatches a notification to a single device token.
	Send(ctx context.Context, input *SendInput) *SendResult

	// SendToTopic dispatches a notification to a named topic.
	SendToTopic(ctx context.Context, input *TopicSendInput) (*TopicSendResult, error)

	// Subscribe subscribes a device token to a topic and writes an audit
	// record after the provider call succeeds.
	Subscribe(ctx context.Context, token, topic string) (*SendResult, error)

	// Unsubscribe removes a device token from a topic and writes an audit
	// record after the provider call succeeds.
	Unsubscribe(ctx context.Context, token, topic string) (*SendResult, error)

	// ListNotifications returns records ordered by creation time descending.
	ListNotifications(ctx context.Context, input *ListInput) ([]*entity.Notification, error)

	// CountNotifications counts records matching the filter.
	CountNotifications(ctx context.Context, filter *repository.NotificationFilter) (int64, error)

	// GetNotificationByID retrieves a single record.
	GetNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
}
