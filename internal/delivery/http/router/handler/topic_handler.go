package handler

import (
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/http/response"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TopicHandlerParams holds dependencies for TopicHandler, injected by Fx.
type TopicHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// TopicHandler holds dependencies for topic subscription handlers
type TopicHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewTopicHandler is the constructor for TopicHandler
func NewTopicHandler(params TopicHandlerParams) *TopicHandler {
	return &TopicHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// TopicSubscriptionRequest represents the request body for subscribe and
// unsubscribe operations
type TopicSubscriptionRequest struct {
	Token string `json:"fcm_token" validate:"required"`
	Topic string `json:"topic" validate:"required"`
}

// Subscribe handles subscribing a device token to a topic
func (h *TopicHandler) Subscribe(c echo.Context) error {
	var req TopicSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	result, err := h.notificationUC.Subscribe(c.Request().Context(), req.Token, req.Topic)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Subscribed to topic")
}

// Unsubscribe handles removing a device token from a topic
func (h *TopicHandler) Unsubscribe(c echo.Context) error {
	var req TopicSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	result, err := h.notificationUC.Unsubscribe(c.Request().Context(), req.Token, req.Topic)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Unsubscribed from topic")
}
