package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FantRS/web-chat/internal/logger"
	"github.com/FantRS/web-chat/internal/model"
	"github.com/FantRS/web-chat/internal/password"
)

// TokenManager mints session tokens for authenticated users.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
}

// PasswordHasher hashes passwords and verifies candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}

// User provides account operations: registration, login, lookup,
// credential update and deletion.
type User struct {
	userStore    model.UserStore
	hasher       PasswordHasher
	tokenManager TokenManager
	logger       *logger.Logger
}

// NewUser constructs the user service.
func NewUser(userStore model.UserStore, hasher PasswordHasher, tokenManager TokenManager, logger *logger.Logger) *User {
	return &User{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new account from validated credentials. Only the
// password hash is persisted.
func (s *User) Register(ctx context.Context, email model.Email, pass model.Password) (model.User, error) {
	passwordHash, err := s.hasher.Hash(pass.String())
	if err != nil {
		s.logger.Error("user service: failed to hash password",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        email.String(),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			s.logger.Info("user service: email already taken",
				"email", email.String())
			return model.User{}, model.ErrEmailTaken
		}
		s.logger.Error("user service: failed to create user",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user service: user registered",
		"user_id", saved.ID)

	return saved, nil
}

// Login verifies credentials and returns a session token.
//
// The unknown-email and wrong-password cases must stay
// indistinguishable to the caller: exactly one hash verification runs
// either way (against a fixed dummy hash when the lookup misses), and
// both return the same ErrUnauthorized.
func (s *User) Login(ctx context.Context, email model.Email, pass model.Password) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email.String())

	found := true
	targetHash := user.PasswordHash
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("user service: failed to get user by email",
				"error", err.Error())
			return "", fmt.Errorf("failed to get user by email: %w", err)
		}
		found = false
		targetHash = password.Dummy
	}

	valid := s.hasher.Verify(pass.String(), targetHash)
	if !found || !valid {
		return "", model.ErrUnauthorized
	}

	tokenString, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error("user service: failed to issue session token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user service: user logged in",
		"user_id", user.ID)

	return tokenString, nil
}

// GetByID returns the stored user with the given id.
func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		s.logger.Error("user service: failed to get user by id",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Update applies an account mutation. A new password re-enters the
// hashing path and only the resulting hash is stored; the previous
// hash is never read back or compared.
func (s *User) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (uuid.UUID, error) {
	if update.IsEmpty() {
		return uuid.Nil, model.ErrEmptyUpdate
	}

	if update.Email != nil {
		if _, err := s.userStore.UpdateEmail(ctx, id, update.Email.String()); err != nil {
			if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrEmailTaken) {
				return uuid.Nil, err
			}
			s.logger.Error("user service: failed to update email",
				"user_id", id,
				"error", err.Error())
			return uuid.Nil, fmt.Errorf("failed to update email: %w", err)
		}
	}

	if update.Password != nil {
		passwordHash, err := s.hasher.Hash(update.Password.String())
		if err != nil {
			s.logger.Error("user service: failed to hash password",
				"user_id", id,
				"error", err.Error())
			return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
		}

		if _, err := s.userStore.UpdatePassword(ctx, id, passwordHash); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return uuid.Nil, model.ErrNotFound
			}
			s.logger.Error("user service: failed to update password",
				"user_id", id,
				"error", err.Error())
			return uuid.Nil, fmt.Errorf("failed to update password: %w", err)
		}
	}

	s.logger.Info("user service: user updated",
		"user_id", id)

	return id, nil
}

// Delete removes a user account.
func (s *User) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	deletedID, err := s.userStore.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, model.ErrNotFound
		}
		s.logger.Error("user service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user service: user deleted",
		"user_id", deletedID)

	return deletedID, nil
}
