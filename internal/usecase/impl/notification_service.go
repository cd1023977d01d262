// Package impl contains the use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Audit record contents for subscription management operations.
const (
	subscribeAuditTitle   = "Subscription to topic"
	unsubscribeAuditTitle = "Unsubscription from topic"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender
	eventPublisher   service.EventPublisher
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	eventPublisher service.EventPublisher,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		eventPublisher:   eventPublisher,
	}
}

// Send dispatches a notification to a single device token.
//
// The record is inserted with status pending BEFORE the provider call so that
// a "someone asked to send X" trail survives any downstream failure. Every
// failure after that point is absorbed into the result counters; the record
// deliberately stays pending rather than being flipped to failed, so that
// permanently pending rows can be reconciled by hand.
func (s *notificationService) Send(ctx context.Context, input *usecase.SendInput) *usecase.SendResult {
	if err := validateSendInput(input); err != nil {
		return sendFailure(err)
	}

	notification := &entity.Notification{
		Title:  input.Title,
		Body:   input.Body,
		Token:  input.Token,
		Status: entity.StatusPending,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.logger.Error("Failed to persist notification record",
			slog.String("error", err.Error()),
		)

		return sendFailure(err)
	}

	msg := &service.PushMessage{
		Title: input.Title,
		Body:  input.Body,
		Image: input.Image,
		Data:  input.Data,
		Token: input.Token,
	}

	messageID, err := s.pushSender.SendToToken(ctx, msg)
	if err != nil {
		s.logger.Error("Failed to send notification",
			slog.String("notification_id", notification.ID.String()),
			slog.String("error", err.Error()),
		)

		return sendFailure(err)
	}

	if err := s.notificationRepo.UpdateNotificationStatus(ctx, notification.ID, entity.StatusSent); err != nil {
		s.logger.Error("Failed to update notification status",
			slog.String("notification_id", notification.ID.String()),
			slog.String("error", err.Error()),
		)

		return sendFailure(err)
	}

	s.publishDispatchEvent(ctx, &service.DispatchEvent{
		RequestID:      input.RequestID,
		NotificationID: notification.ID.String(),
		Token:          input.Token,
		MessageID:      messageID,
		Status:         string(entity.StatusSent),
	})

	return &usecase.SendResult{
		SuccessCount: 1,
		FailureCount: 0,
		Messages:     []string{fmt.Sprintf("sent with id: %s", messageID)},
	}
}

// SendToTopic dispatches a notification to a named topic. Unlike Send,
// failures are propagated to the caller after logging.
func (s *notificationService) SendToTopic(ctx context.Context, input *usecase.TopicSendInput) (*usecase.TopicSendResult, error) {
	notification := &entity.Notification{
		Title:  input.Title,
		Body:   input.Body,
		Topic:  input.Topic,
		Status: entity.StatusPending,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.logger.Error("Failed to persist topic notification record",
			slog.String("topic", input.Topic),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "failed to persist topic notification record")
	}

	msg := &service.PushMessage{
		Title: input.Title,
		Body:  input.Body,
		Image: input.Image,
		Data:  input.Data,
		Topic: input.Topic,
	}

	messageID, err := s.pushSender.SendToTopic(ctx, msg)
	if err != nil {
		s.logger.Error("Failed to send topic notification",
			slog.String("notification_id", notification.ID.String()),
			slog.String("topic", input.Topic),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(domainerrors.ErrTopicDispatchFailed, "failed to send topic notification")
	}

	if err := s.notificationRepo.UpdateNotificationStatus(ctx, notification.ID, entity.StatusSent); err != nil {
		s.logger.Error("Failed to update topic notification status",
			slog.String("notification_id", notification.ID.String()),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "failed to update topic notification status")
	}

	s.publishDispatchEvent(ctx, &service.DispatchEvent{
		RequestID:      input.RequestID,
		NotificationID: notification.ID.String(),
		Topic:          input.Topic,
		MessageID:      messageID,
		Status:         string(entity.StatusSent),
	})

	return &usecase.TopicSendResult{
		MessageID: messageID,
		Topic:     input.Topic,
	}, nil
}

// Subscribe subscribes a device token to a topic. The audit record is written
// AFTER the provider call: there is no pending pre-write on this path, and
// repeated calls with the same pair produce one audit record each.
func (s *notificationService) Subscribe(ctx context.Context, token, topic string) (*usecase.SendResult, error) {
	result, err := s.pushSender.SubscribeToTopic(ctx, token, topic)
	if err != nil {
		s.logger.Error("Failed to subscribe to topic",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(domainerrors.ErrTopicSubscriptionFailed, "failed to subscribe to topic")
	}

	audit := &entity.Notification{
		Title:  subscribeAuditTitle,
		Body:   fmt.Sprintf("Token subscribed to topic %s", topic),
		Topic:  topic,
		Token:  token,
		Status: entity.StatusSent,
	}
	if err := s.notificationRepo.CreateNotification(ctx, audit); err != nil {
		s.logger.Error("Failed to persist subscription audit record",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "failed to persist subscription audit record")
	}

	return topicManagementResult(result), nil
}

// Unsubscribe removes a device token from a topic; mirror of Subscribe.
func (s *notificationService) Unsubscribe(ctx context.Context, token, topic string) (*usecase.SendResult, error) {
	result, err := s.pushSender.UnsubscribeFromTopic(ctx, token, topic)
	if err != nil {
		s.logger.Error("Failed to unsubscribe from topic",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(domainerrors.ErrTopicSubscriptionFailed, "failed to unsubscribe from topic")
	}

	audit := &entity.Notification{
		Title:  unsubscribeAuditTitle,
		Body:   fmt.Sprintf("Token unsubscribed from topic %s", topic),
		Topic:  topic,
		Token:  token,
		Status: entity.StatusSent,
	}
	if err := s.notificationRepo.CreateNotification(ctx, audit); err != nil {
		s.logger.Error("Failed to persist unsubscription audit record",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "failed to persist unsubscription audit record")
	}

	return topicManagementResult(result), nil
}

// ListNotifications returns records ordered by creation time descending.
func (s *notificationService) ListNotifications(ctx context.Context, input *usecase.ListInput) ([]*entity.Notification, error) {
	skip, take := 0, 10
	var filter *repository.NotificationFilter

	if input != nil {
		if input.Skip > 0 {
			skip = input.Skip
		}
		if input.Take > 0 {
			take = input.Take
		}
		filter = input.Filter
	}

	return s.notificationRepo.FindNotifications(ctx, filter, skip, take)
}

// CountNotifications counts records matching the filter.
func (s *notificationService) CountNotifications(ctx context.Context, filter *repository.NotificationFilter) (int64, error) {
	return s.notificationRepo.CountNotifications(ctx, filter)
}

// GetNotificationByID retrieves a single record.
func (s *notificationService) GetNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	return s.notificationRepo.FindNotificationByID(ctx, id)
}

// publishDispatchEvent publishes fire-and-forget; a publish failure must
// never change the dispatch outcome.
func (s *notificationService) publishDispatchEvent(ctx context.Context, event *service.DispatchEvent) {
	if s.eventPublisher == nil {
		return
	}

	if err := s.eventPublisher.PublishDispatchEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish dispatch event",
			slog.String("notification_id", event.NotificationID),
			slog.String("error", err.Error()),
		)
	}
}

func validateSendInput(input *usecase.SendInput) error {
	if input == nil {
		return errors.New("send input is required")
	}
	if input.Title == "" {
		return errors.New("title is required")
	}
	if input.Body == "" {
		return errors.New("body is required")
	}
	if input.Token == "" {
		return errors.New("fcm token is required")
	}

	return nil
}

func sendFailure(err error) *usecase.SendResult {
	return &usecase.SendResult{
		SuccessCount: 0,
		FailureCount: 1,
		Messages:     []string{fmt.Sprintf("error: %s", err.Error())},
	}
}

func topicManagementResult(result *service.TopicManagementResult) *usecase.SendResult {
	return &usecase.SendResult{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		Messages:     result.Errors,
	}
}
