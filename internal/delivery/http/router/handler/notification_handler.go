package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pushgate/internal/delivery/http/response"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// serviceStatusMessage is the constant readiness string for GET /status.
const serviceStatusMessage = "Notification service active"

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendNotificationRequest represents the request body for a single-device send
type SendNotificationRequest struct {
	Title string            `json:"title" validate:"required"`
	Body  string            `json:"body" validate:"required"`
	Token string            `json:"fcm_token" validate:"required"`
	Image string            `json:"image,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendTopicNotificationRequest represents the request body for a topic send
type SendTopicNotificationRequest struct {
	Title string            `json:"title" validate:"required"`
	Body  string            `json:"body" validate:"required"`
	Topic string            `json:"topic" validate:"required"`
	Image string            `json:"image,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Send handles a single-device notification send. The use case absorbs every
// dispatch failure into the result counters, so this route always answers 200
// once the input binds and validates.
func (h *NotificationHandler) Send(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	result := h.notificationUC.Send(c.Request().Context(), &usecase.SendInput{
		Title:     req.Title,
		Body:      req.Body,
		Token:     req.Token,
		Image:     req.Image,
		Data:      req.Data,
		RequestID: requestID(c),
	})

	return response.Success(c, http.StatusOK, result, "Notification processed")
}

// SendToTopic handles a topic notification send. Failures propagate as errors.
func (h *NotificationHandler) SendToTopic(c echo.Context) error {
	var req SendTopicNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid topic notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	result, err := h.notificationUC.SendToTopic(c.Request().Context(), &usecase.TopicSendInput{
		Title:     req.Title,
		Body:      req.Body,
		Topic:     req.Topic,
		Image:     req.Image,
		Data:      req.Data,
		RequestID: requestID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Topic notification sent")
}

// List handles the paginated notification listing with optional filters.
func (h *NotificationHandler) List(c echo.Context) error {
	input := &usecase.ListInput{
		Skip:   queryInt(c, "skip", 0),
		Take:   queryInt(c, "take", 10),
		Filter: filterFromQuery(c),
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved")
}

// Count handles counting notifications with the same optional filters.
func (h *NotificationHandler) Count(c echo.Context) error {
	count, err := h.notificationUC.CountNotifications(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Notifications counted")
}

// GetByID handles retrieving a single notification record.
func (h *NotificationHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	notification, err := h.notificationUC.GetNotificationByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification retrieved")
}

// ServiceStatus reports the constant readiness string.
func ServiceStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": serviceStatusMessage}, "Service status retrieved")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// filterFromQuery builds the enumerated filter from query parameters.
func filterFromQuery(c echo.Context) *repository.NotificationFilter {
	filter := &repository.NotificationFilter{}
	empty := true

	if status := c.QueryParam("status"); status != "" {
		s := entity.NotificationStatus(status)
		filter.Status = &s
		empty = false
	}
	if topic := c.QueryParam("topic"); topic != "" {
		filter.Topic = &topic
		empty = false
	}
	if token := c.QueryParam("fcm_token"); token != "" {
		filter.Token = &token
		empty = false
	}

	if empty {
		return nil
	}

	return filter
}

// requestID returns the identifier assigned by the request-id middleware,
// preferring a caller-supplied header.
func requestID(c echo.Context) string {
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}

	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}

	return parsed
}
