package handler

import (
	"context"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"
)

// GetUserFromContext returns the authenticated user the session middleware put
// on the request context. A missing user means the route was registered
// without the middleware, which callers surface as 401 rather than panic.
func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := model.GetUserFromContext(ctx)
	if !ok {
		return nil, errdef.NewUnauthorized("no user found on request context")
	}
	return user, nil
}
