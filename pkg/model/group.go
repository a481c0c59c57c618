package model

import "time"

// Role governs which group lifecycle operations a member may perform.
type Role string

const (
	// RoleOwner is assigned to the creator of a group. The owner can delete
	// the group but can never leave it.
	RoleOwner Role = "owner"
	// RoleMember is assigned on join. Members can leave at any time.
	RoleMember Role = "member"
)

// StudyGroup domain object defining a collaborative study group. It is the
// root of a cascade: memberships, messages, notes, sessions and notifications
// are exclusively owned by exactly one group and are destroyed with it.
// swagger:model
type StudyGroup struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Private   bool      `json:"private"`

	Memberships   []Membership   `gorm:"constraint:OnDelete:CASCADE" json:"memberships,omitempty"`
	Messages      []Message      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notes         []Note         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Sessions      []StudySession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notifications []Notification `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Membership links a user to a group with a role. The composite unique index
// guarantees at most one membership per (group, user) pair regardless of how
// many join requests race.
// swagger:model
type Membership struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	GroupID   uint      `gorm:"uniqueIndex:idx_memberships_group_user" json:"groupId"`
	UserID    uint      `gorm:"uniqueIndex:idx_memberships_group_user" json:"userId"`
	Role      Role      `gorm:"type:varchar(16)" json:"role"`
	User      User      `json:"user"`
}

func (m *Membership) IsOwner() bool {
	return m.Role == RoleOwner
}
