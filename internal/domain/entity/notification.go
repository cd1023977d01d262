// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the delivery status of a notification record.
type NotificationStatus string

const (
	// StatusPending is the initial status of every record, written before the
	// provider call.
	StatusPending NotificationStatus = "pending"
	// StatusSent is set once the provider has accepted the message.
	StatusSent NotificationStatus = "sent"
	// StatusFailed exists in the schema but no dispatch path writes it: a
	// failed send leaves the record pending for manual reconciliation.
	StatusFailed NotificationStatus = "failed"
)

// Notification represents a single push-notification attempt or a topic
// subscription audit entry. Records are inserted before the provider call on
// send paths and are never deleted by this service.
type Notification struct {
	ID        uuid.UUID          `json:"id"`         // The Global Unique Identifier (GUID) for the record.
	Title     string             `json:"title"`      // The notification title.
	Body      string             `json:"body"`       // The notification body text.
	Topic     string             `json:"topic"`      // Target topic for topic sends and subscription audits.
	Token     string             `json:"fcm_token"`  // Target device token for single sends and subscription audits.
	Status    NotificationStatus `json:"status"`     // Current status; the only field mutated after insert.
	CreatedAt time.Time          `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last modification.
}
