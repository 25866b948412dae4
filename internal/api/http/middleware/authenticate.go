package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	httpctx "github.com/FantRS/web-chat/internal/api/http/context"
	"github.com/FantRS/web-chat/internal/logger"
	"github.com/FantRS/web-chat/internal/model"
	"github.com/FantRS/web-chat/internal/token"
)

// TokenParser validates session tokens and returns their claims.
type TokenParser interface {
	Parse(tokenString string) (token.Claims, error)
}

// Authenticate gates protected routes behind bearer-token validation.
type Authenticate struct {
	tokenManager TokenParser
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, logger: logger}
}

// Handle extracts and validates the bearer token from the Authorization
// header. Requests with a missing, malformed, mis-signed or expired
// token are rejected before the route handler runs.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return model.ErrMissingToken
	}

	claims, err := m.tokenManager.Parse(tokenString)
	if err != nil {
		m.logger.Debug("authenticate middleware: token rejected",
			"error", err.Error())
		return model.ErrInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil || userID == uuid.Nil {
		return model.ErrInvalidToken
	}

	httpctx.SetUserID(c, userID)

	return c.Next()
}
