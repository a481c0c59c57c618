package model

import "time"

// Message domain object defining a chat message posted in a group.
// swagger:model
type Message struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	GroupID   uint      `gorm:"index" json:"groupId"`
	UserID    uint      `json:"userId"`
	Body      string    `json:"body"`
}
