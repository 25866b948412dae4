package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users. A missing row is
// reported as ErrNotFound, which callers treat as a normal outcome.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// User represents a stored user account. PasswordHash is the only
// authentication material kept; raw passwords are never persisted.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate describes an account mutation. Nil fields stay unchanged.
type UserUpdate struct {
	Email    *Email
	Password *Password
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Password == nil
}
