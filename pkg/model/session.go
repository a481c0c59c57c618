package model

import "time"

// StudySession domain object defining a scheduled study session of a group.
// swagger:model
type StudySession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	GroupID   uint      `gorm:"index" json:"groupId"`
	UserID    uint      `json:"userId"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
}
