package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications'
// table. One row per dispatch attempt or subscription audit entry.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	Topic     string    `gorm:"type:text;index"`
	Token     string    `gorm:"type:text;index"`
	Status    string    `gorm:"type:text;not null;default:'pending';index"`
	CreatedAt time.Time `gorm:"index:idx_notifications_created_at,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
