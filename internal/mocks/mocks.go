// Package mocks provides testify mocks for the interfaces used across
// service and transport tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/FantRS/web-chat/internal/model"
	"github.com/FantRS/web-chat/internal/token"
)

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdateEmail(ctx context.Context, id uuid.UUID, email string) (uuid.UUID, error) {
	args := m.Called(ctx, id, email)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *UserStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (uuid.UUID, error) {
	args := m.Called(ctx, id, passwordHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// TokenManager mocks service.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

// TokenParser mocks middleware.TokenParser.
type TokenParser struct {
	mock.Mock
}

func (m *TokenParser) Parse(tokenString string) (token.Claims, error) {
	args := m.Called(tokenString)
	return args.Get(0).(token.Claims), args.Error(1)
}

// PasswordHasher mocks service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(password, encodedHash string) bool {
	args := m.Called(password, encodedHash)
	return args.Bool(0)
}

// UserService mocks handler.UserService.
type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, email model.Email, password model.Password) (model.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Login(ctx context.Context, email model.Email, password model.Password) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (uuid.UUID, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
