// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification record is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows list and count queries to known columns.
// Every field is optional; nil means "no constraint". This replaces the
// free-form field-name filter map of earlier revisions so that only schema
// columns can ever be filtered on.
type NotificationFilter struct {
	Status *entity.NotificationStatus
	Topic  *string
	Token  *string
}

// NotificationRepository defines the interface for notification-related
// database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// UpdateNotificationStatus updates the status of an existing record.
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus) error

	// FindNotificationByID retrieves a record by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotifications retrieves records matching the filter, ordered by
	// creation time descending, with skip/take pagination.
	FindNotifications(ctx context.Context, filter *NotificationFilter, skip, take int) ([]*entity.Notification, error)

	// CountNotifications counts records matching the filter.
	CountNotifications(ctx context.Context, filter *NotificationFilter) (int64, error)
}
