package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	NotificationTypeNewMatch = "new_match"
	NotificationTypeGeneral  = "general"
)

// Notification is an in-app notification for one user. Append-only except the
// read flag. RelatedID points at the entity that produced it (e.g. a Match).
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Type      string     `gorm:"size:30;default:'general';index" json:"type"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	RelatedID *uuid.UUID `gorm:"type:uuid" json:"related_id"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
