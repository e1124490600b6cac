package context

import (
	"taskmanager/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the key for storing the authenticated user in echo.Context.
const KeyCurrentUser ContextKey = "current_user"

// SetCurrentUser stores the authenticated user in echo.Context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
}

// GetCurrentUser returns the authenticated user, if the auth middleware resolved one.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)

	return user, ok && user != nil
}
