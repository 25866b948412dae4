package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/FantRS/web-chat/internal/logger"
	"github.com/FantRS/web-chat/internal/model"
)

// UserService defines account operations exposed over HTTP.
type UserService interface {
	Register(ctx context.Context, email model.Email, password model.Password) (model.User, error)
	Login(ctx context.Context, email model.Email, password model.Password) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// credentialsRequest is the JSON body for registration and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateUserRequest is the JSON body for PATCH /users/:id. Absent
// fields stay unchanged.
type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// userResponse is returned for user lookups. It never carries the
// password hash.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User handles HTTP endpoints for user accounts.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Register handles POST /users. Credentials are validated before any
// hashing or store work happens.
func (h *User) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email, err := model.ParseEmail(req.Email)
	if err != nil {
		return err
	}
	pass, err := model.ParsePassword(req.Password)
	if err != nil {
		return err
	}

	user, err := h.userService.Register(c.UserContext(), email, pass)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).SendString(user.ID.String())
}

// Login handles POST /users/login. On success the response body is the
// session token; every credential failure is the same 401.
func (h *User) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email, err := model.ParseEmail(req.Email)
	if err != nil {
		return err
	}
	pass, err := model.ParsePassword(req.Password)
	if err != nil {
		return err
	}

	tokenString, err := h.userService.Login(c.UserContext(), email, pass)
	if err != nil {
		return err
	}

	return c.SendString(tokenString)
}

// GetByID handles GET /users/:id.
func (h *User) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	user, err := h.userService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

// Update handles PATCH /users/:id. A new password passes through
// validation and hashing; only the hash reaches the store.
func (h *User) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var update model.UserUpdate
	if req.Email != nil {
		email, err := model.ParseEmail(*req.Email)
		if err != nil {
			return err
		}
		update.Email = &email
	}
	if req.Password != nil {
		pass, err := model.ParsePassword(*req.Password)
		if err != nil {
			return err
		}
		update.Password = &pass
	}

	updatedID, err := h.userService.Update(c.UserContext(), id, update)
	if err != nil {
		return err
	}

	return c.SendString(updatedID.String())
}

// Delete handles DELETE /users/:id.
func (h *User) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	deletedID, err := h.userService.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.SendString(deletedID.String())
}
