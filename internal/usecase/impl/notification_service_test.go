package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	mockRepo "pushgate/internal/mocks/repository"
	mockSvc "pushgate/internal/mocks/service"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockPushSender,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(logger, notificationRepo, pushSender, eventPublisher)

	return svc, notificationRepo, pushSender, eventPublisher
}

func validSendInput() *usecase.SendInput {
	return &usecase.SendInput{
		Title: "Order ready",
		Body:  "Your order is ready for pickup",
		Token: "device-token-1",
	}
}

func TestNotificationService_Send_Success(t *testing.T) {
	svc, notificationRepo, pushSender, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	recordCreated := false

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) {
			// The record must be persisted as pending before the provider call.
			assert.Equal(t, entity.StatusPending, n.Status)
			assert.Equal(t, "Order ready", n.Title)
			assert.Equal(t, "device-token-1", n.Token)
			n.ID = uuid.New()
			recordCreated = true
		}).
		Return(nil)

	pushSender.EXPECT().
		SendToToken(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return assert.True(t, recordCreated, "record must exist before the provider is called") &&
				msg.Token == "device-token-1" && msg.Topic == ""
		})).
		Return("abc", nil)

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.StatusSent).
		Return(nil)

	eventPublisher.EXPECT().
		PublishDispatchEvent(ctx, mock.MatchedBy(func(ev *service.DispatchEvent) bool {
			return ev.MessageID == "abc" &&
				ev.Status == string(entity.StatusSent) &&
				ev.RequestID == "req-123"
		})).
		Return(nil)

	input := validSendInput()
	input.RequestID = "req-123"
	result := svc.Send(ctx, input)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Equal(t, []string{"sent with id: abc"}, result.Messages)
}

func TestNotificationService_Send_ProviderFailureKeepsRecordPending(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	// No UpdateNotificationStatus expectation: the record must stay pending.
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)

	pushSender.EXPECT().
		SendToToken(ctx, mock.Anything).
		Return("", errors.New("invalid token"))

	result := svc.Send(ctx, validSendInput())

	require.NotNil(t, result)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, []string{"error: invalid token"}, result.Messages)
}

func TestNotificationService_Send_CreateFailureAbsorbed(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("db connection failed"))

	result := svc.Send(ctx, validSendInput())

	require.NotNil(t, result)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Contains(t, result.Messages[0], "error: db connection failed")
}

func TestNotificationService_Send_UpdateFailureAbsorbed(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)

	pushSender.EXPECT().
		SendToToken(ctx, mock.Anything).
		Return("msg-1", nil)

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.StatusSent).
		Return(errors.New("status update failed"))

	result := svc.Send(ctx, validSendInput())

	require.NotNil(t, result)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Contains(t, result.Messages[0], "error: status update failed")
}

func TestNotificationService_Send_InvalidInput(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.SendInput
	}{
		{name: "nil input", input: nil},
		{name: "missing title", input: &usecase.SendInput{Body: "b", Token: "t"}},
		{name: "missing body", input: &usecase.SendInput{Title: "a", Token: "t"}},
		{name: "missing token", input: &usecase.SendInput{Title: "a", Body: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Send(ctx, tt.input)

			require.NotNil(t, result)
			assert.Equal(t, 0, result.SuccessCount)
			assert.Equal(t, 1, result.FailureCount)
			assert.Len(t, result.Messages, 1)
			assert.Contains(t, result.Messages[0], "error: ")
		})
	}
}

func TestNotificationService_Send_CountersSumToOne(t *testing.T) {
	svc, notificationRepo, pushSender, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil).Twice()

	pushSender.EXPECT().SendToToken(ctx, mock.Anything).Return("m-1", nil).Once()
	pushSender.EXPECT().SendToToken(ctx, mock.Anything).Return("", errors.New("unregistered")).Once()

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.StatusSent).
		Return(nil).Once()
	eventPublisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil).Once()

	ok := svc.Send(ctx, validSendInput())
	failed := svc.Send(ctx, validSendInput())

	assert.Equal(t, 1, ok.SuccessCount+ok.FailureCount)
	assert.Equal(t, 1, failed.SuccessCount+failed.FailureCount)
}

func TestNotificationService_Send_PublishFailureDoesNotChangeOutcome(t *testing.T) {
	svc, notificationRepo, pushSender, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)
	pushSender.EXPECT().SendToToken(ctx, mock.Anything).Return("m-2", nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.StatusSent).
		Return(nil)

	eventPublisher.EXPECT().
		PublishDispatchEvent(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	result := svc.Send(ctx, validSendInput())

	require.NotNil(t, result)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, []string{"sent with id: m-2"}, result.Messages)
}

func TestNotificationService_SendToTopic_Success(t *testing.T) {
	svc, notificationRepo, pushSender, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.TopicSendInput{
		Title:     "Promo",
		Body:      "Weekend deals",
		Topic:     "news",
		RequestID: "req-456",
	}

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) {
			assert.Equal(t, entity.StatusPending, n.Status)
			assert.Equal(t, "news", n.Topic)
			assert.Empty(t, n.Token)
			n.ID = uuid.New()
		}).
		Return(nil)

	pushSender.EXPECT().
		SendToTopic(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Topic == "news" && msg.Token == ""
		})).
		Return("topic-msg-1", nil)

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.StatusSent).
		Return(nil)

	eventPublisher.EXPECT().
		PublishDispatchEvent(ctx, mock.MatchedBy(func(ev *service.DispatchEvent) bool {
			return ev.MessageID == "topic-msg-1" && ev.RequestID == "req-456"
		})).
		Return(nil)

	result, err := svc.SendToTopic(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "topic-msg-1", result.MessageID)
	assert.Equal(t, "news", result.Topic)
}

func TestNotificationService_SendToTopic_CreateError(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("db connection failed"))

	result, err := svc.SendToTopic(ctx, &usecase.TopicSendInput{Title: "a", Body: "b", Topic: "news"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to persist topic notification record")
}

func TestNotificationService_SendToTopic_ProviderError(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)

	pushSender.EXPECT().
		SendToTopic(ctx, mock.Anything).
		Return("", errors.New("topic quota exceeded"))

	result, err := svc.SendToTopic(ctx, &usecase.TopicSendInput{Title: "a", Body: "b", Topic: "news"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrTopicDispatchFailed)
	assert.Contains(t, err.Error(), "failed to send topic notification")
}

func TestNotificationService_SendToTopic_UpdateStatusError(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)
	pushSender.EXPECT().SendToTopic(ctx, mock.Anything).Return("topic-msg-2", nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.StatusSent).
		Return(errors.New("status update failed"))

	result, err := svc.SendToTopic(ctx, &usecase.TopicSendInput{Title: "a", Body: "b", Topic: "news"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to update topic notification status")
}

func TestNotificationService_Subscribe_Success(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()
	providerCalled := false

	pushSender.EXPECT().
		SubscribeToTopic(ctx, "device-token-1", "news").
		Run(func(_ context.Context, _ string, _ string) { providerCalled = true }).
		Return(&service.TopicManagementResult{SuccessCount: 1, FailureCount: 0}, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			// The audit record is written after the provider call and is
			// immediately sent, never pending.
			return providerCalled &&
				n.Title == "Subscription to topic" &&
				n.Body == "Token subscribed to topic news" &&
				n.Topic == "news" &&
				n.Token == "device-token-1" &&
				n.Status == entity.StatusSent
		})).
		Return(nil)

	result, err := svc.Subscribe(ctx, "device-token-1", "news")

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.Messages)
}

func TestNotificationService_Subscribe_ProviderError(t *testing.T) {
	svc, _, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	// No audit record on provider failure.
	pushSender.EXPECT().
		SubscribeToTopic(ctx, "device-token-1", "news").
		Return(nil, errors.New("messaging/invalid-argument"))

	result, err := svc.Subscribe(ctx, "device-token-1", "news")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrTopicSubscriptionFailed)
	assert.Contains(t, err.Error(), "failed to subscribe to topic")
}

func TestNotificationService_Subscribe_AuditWriteError(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	pushSender.EXPECT().
		SubscribeToTopic(ctx, "device-token-1", "news").
		Return(&service.TopicManagementResult{SuccessCount: 1}, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("db connection failed"))

	result, err := svc.Subscribe(ctx, "device-token-1", "news")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to persist subscription audit record")
}

func TestNotificationService_Subscribe_RepeatedCallsCreateOneAuditEach(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	pushSender.EXPECT().
		SubscribeToTopic(ctx, "device-token-1", "news").
		Return(&service.TopicManagementResult{SuccessCount: 1}, nil).
		Twice()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(nil).
		Twice()

	_, err := svc.Subscribe(ctx, "device-token-1", "news")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "device-token-1", "news")
	require.NoError(t, err)
}

func TestNotificationService_Subscribe_PartialFailureMapping(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	pushSender.EXPECT().
		SubscribeToTopic(ctx, "device-token-1", "news").
		Return(&service.TopicManagementResult{
			SuccessCount: 0,
			FailureCount: 1,
			Errors:       []string{"index 0: INVALID_ARGUMENT"},
		}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	result, err := svc.Subscribe(ctx, "device-token-1", "news")

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, []string{"index 0: INVALID_ARGUMENT"}, result.Messages)
}

func TestNotificationService_Unsubscribe_Success(t *testing.T) {
	svc, notificationRepo, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	pushSender.EXPECT().
		UnsubscribeFromTopic(ctx, "device-token-1", "news").
		Return(&service.TopicManagementResult{SuccessCount: 1}, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Title == "Unsubscription from topic" &&
				n.Body == "Token unsubscribed from topic news" &&
				n.Status == entity.StatusSent
		})).
		Return(nil)

	result, err := svc.Unsubscribe(ctx, "device-token-1", "news")

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestNotificationService_Unsubscribe_ProviderError(t *testing.T) {
	svc, _, pushSender, _ := createTestNotificationService(t)

	ctx := context.Background()

	pushSender.EXPECT().
		UnsubscribeFromTopic(ctx, "device-token-1", "news").
		Return(nil, errors.New("messaging/unknown-error"))

	result, err := svc.Unsubscribe(ctx, "device-token-1", "news")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrTopicSubscriptionFailed)
	assert.Contains(t, err.Error(), "failed to unsubscribe from topic")
}

func TestNotificationService_ListNotifications_Defaults(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	expected := []*entity.Notification{{ID: uuid.New(), Title: "a"}}

	notificationRepo.EXPECT().
		FindNotifications(ctx, (*repository.NotificationFilter)(nil), 0, 10).
		Return(expected, nil)

	got, err := svc.ListNotifications(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestNotificationService_ListNotifications_WithFilterAndPaging(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	status := entity.StatusSent
	filter := &repository.NotificationFilter{Status: &status}

	notificationRepo.EXPECT().
		FindNotifications(ctx, filter, 20, 5).
		Return([]*entity.Notification{}, nil)

	got, err := svc.ListNotifications(ctx, &usecase.ListInput{Skip: 20, Take: 5, Filter: filter})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotificationService_CountNotifications(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	topic := "news"
	filter := &repository.NotificationFilter{Topic: &topic}

	notificationRepo.EXPECT().
		CountNotifications(ctx, filter).
		Return(int64(42), nil)

	count, err := svc.CountNotifications(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestNotificationService_GetNotificationByID(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	expected := &entity.Notification{ID: id, Title: "a"}

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(expected, nil)

	got, err := svc.GetNotificationByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestNotificationService_GetNotificationByID_NotFound(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(nil, repository.ErrNotificationNotFound)

	got, err := svc.GetNotificationByID(ctx, id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
