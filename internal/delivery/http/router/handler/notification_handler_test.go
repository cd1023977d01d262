package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pushgate/internal/delivery/http/validator"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	mockUC "pushgate/internal/mocks/usecase"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUC.MockNotificationUsecase, *echo.Echo) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	h := &NotificationHandler{
		notificationUC: notificationUC,
		logger:         logger,
	}

	return h, notificationUC, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNotificationHandler_Send_Success(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	notificationUC.EXPECT().
		Send(mock.Anything, &usecase.SendInput{
			Title: "Order ready",
			Body:  "Your order is ready",
			Token: "device-token-1",
		}).
		Return(&usecase.SendResult{
			SuccessCount: 1,
			Messages:     []string{"sent with id: abc"},
		})

	c, rec := newJSONContext(e, http.MethodPost, "/notifications/send",
		`{"title":"Order ready","body":"Your order is ready","fcm_token":"device-token-1"}`)

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success_count":1`)
	assert.Contains(t, rec.Body.String(), "sent with id: abc")
}

func TestNotificationHandler_Send_DispatchFailureStillOK(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	// Dispatch failures are absorbed into the counters, never an HTTP error.
	notificationUC.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(&usecase.SendResult{
			FailureCount: 1,
			Messages:     []string{"error: invalid token"},
		})

	c, rec := newJSONContext(e, http.MethodPost, "/notifications/send",
		`{"title":"a","body":"b","fcm_token":"bad"}`)

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "error: invalid token")
}

func TestNotificationHandler_Send_ValidationError(t *testing.T) {
	h, _, e := createTestNotificationHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/notifications/send",
		`{"title":"a","body":"b"}`)

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestNotificationHandler_Send_ForwardsRequestID(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	notificationUC.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(input *usecase.SendInput) bool {
			return input.RequestID == "req-789"
		})).
		Return(&usecase.SendResult{SuccessCount: 1, Messages: []string{"sent with id: abc"}})

	c, rec := newJSONContext(e, http.MethodPost, "/notifications/send",
		`{"title":"a","body":"b","fcm_token":"device-token-1"}`)
	c.Request().Header.Set(echo.HeaderXRequestID, "req-789")

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_SendToTopic_Success(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	notificationUC.EXPECT().
		SendToTopic(mock.Anything, &usecase.TopicSendInput{
			Title: "Promo",
			Body:  "Weekend deals",
			Topic: "news",
		}).
		Return(&usecase.TopicSendResult{MessageID: "topic-msg-1", Topic: "news"}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/notifications/topic",
		`{"title":"Promo","body":"Weekend deals","topic":"news"}`)

	require.NoError(t, h.SendToTopic(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "topic-msg-1")
}

func TestNotificationHandler_SendToTopic_UsecaseError(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	notificationUC.EXPECT().
		SendToTopic(mock.Anything, mock.Anything).
		Return(nil, errors.New("topic quota exceeded"))

	c, _ := newJSONContext(e, http.MethodPost, "/notifications/topic",
		`{"title":"a","body":"b","topic":"news"}`)

	// Non-domain errors bubble up to the echo error handler.
	err := h.SendToTopic(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic quota exceeded")
}

func TestNotificationHandler_SendToTopic_DispatchFailureMapsToBadGateway(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	notificationUC.EXPECT().
		SendToTopic(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrTopicDispatchFailed, "failed to send topic notification"))

	c, rec := newJSONContext(e, http.MethodPost, "/notifications/topic",
		`{"title":"a","body":"b","topic":"news"}`)

	require.NoError(t, h.SendToTopic(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOPIC_DISPATCH_FAILED")
}

func TestNotificationHandler_List_DefaultsAndFilter(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	status := entity.StatusSent
	notificationUC.EXPECT().
		ListNotifications(mock.Anything, &usecase.ListInput{
			Skip:   5,
			Take:   2,
			Filter: &repository.NotificationFilter{Status: &status},
		}).
		Return([]*entity.Notification{{ID: uuid.New(), Title: "a", Status: entity.StatusSent}}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/notifications?skip=5&take=2&status=sent", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"sent"`)
}

func TestNotificationHandler_List_NoFilter(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	notificationUC.EXPECT().
		ListNotifications(mock.Anything, &usecase.ListInput{Skip: 0, Take: 10}).
		Return([]*entity.Notification{}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/notifications", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_Count(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	topic := "news"
	notificationUC.EXPECT().
		CountNotifications(mock.Anything, &repository.NotificationFilter{Topic: &topic}).
		Return(int64(7), nil)

	c, rec := newJSONContext(e, http.MethodGet, "/notifications/count?topic=news", "")

	require.NoError(t, h.Count(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":7`)
}

func TestNotificationHandler_GetByID_Success(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	id := uuid.New()
	notificationUC.EXPECT().
		GetNotificationByID(mock.Anything, id).
		Return(&entity.Notification{ID: id, Title: "a"}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/notifications/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestNotificationHandler_GetByID_NotFound(t *testing.T) {
	h, notificationUC, e := createTestNotificationHandler(t)

	id := uuid.New()
	notificationUC.EXPECT().
		GetNotificationByID(mock.Anything, id).
		Return(nil, repository.ErrNotificationNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/notifications/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOTIFICATION_NOT_FOUND")
}

func TestNotificationHandler_GetByID_InvalidID(t *testing.T) {
	h, _, e := createTestNotificationHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/notifications/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServiceStatus(t *testing.T) {
	_, _, e := createTestNotificationHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/status", "")

	require.NoError(t, ServiceStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Notification service active")
}

func TestHealthCheck(t *testing.T) {
	_, _, e := createTestNotificationHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
