package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User domain object defining an account
// swagger:model
type User struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Email      string    `gorm:"index;unique" json:"email"`
	Name       string    `json:"name"`
	Password   string    `json:"-"`
	EmailToken uuid.UUID `json:"-"`
	Validated  bool      `json:"validated"`
}

// Profile is the read-only projection of a user's public fields which is
// embedded in responses other members of a group can see.
// swagger:model
type Profile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

type contextKey int

var userKey contextKey

// NewContextWithUser returns a new [context.Context] carrying user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user stored in ctx, if any. It is set by the
// authentication middleware, so handlers behind it can rely on ok being true.
func GetUserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userKey).(*User)
	return user, ok
}
