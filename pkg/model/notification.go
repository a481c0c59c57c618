package model

import "time"

// Notification domain object defining a per-user, per-group notification.
// ReadAt is nil until the owning user marks the notification as read.
// swagger:model
type Notification struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	GroupID   uint       `gorm:"index" json:"groupId"`
	UserID    uint       `gorm:"index" json:"userId"`
	Message   string     `json:"message"`
	ReadAt    *time.Time `json:"readAt"`
}
