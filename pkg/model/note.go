package model

import "time"

// Note domain object defining a study note shared with a group.
// swagger:model
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	GroupID   uint      `gorm:"index" json:"groupId"`
	UserID    uint      `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}
