// Package context propagates the authenticated user id through fiber
// request locals.
package context

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userIDKey is the locals key the authenticated user id is stored under.
const userIDKey = "user_id"

// SetUserID stores the authenticated user id on the request context.
func SetUserID(c *fiber.Ctx, userID uuid.UUID) {
	c.Locals(userIDKey, userID)
}

// GetUserID retrieves the authenticated user id from the request
// context. The boolean is false when no authenticated user is attached.
func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	return userID, ok
}
