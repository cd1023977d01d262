// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	TopicHandler        *handler.TopicHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	topicHandler        *handler.TopicHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		topicHandler:        params.TopicHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Readiness endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/status", handler.ServiceStatus)

	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.POST("/send", r.notificationHandler.Send)
		notificationGroup.POST("/topic", r.notificationHandler.SendToTopic)
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/count", r.notificationHandler.Count)
		notificationGroup.GET("/:id", r.notificationHandler.GetByID)
	}

	topicGroup := e.Group("/topics")
	{
		topicGroup.POST("/subscribe", r.topicHandler.Subscribe)
		topicGroup.POST("/unsubscribe", r.topicHandler.Unsubscribe)
	}
}
