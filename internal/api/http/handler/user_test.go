package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FantRS/web-chat/internal/mocks"
	"github.com/FantRS/web-chat/internal/model"
	"github.com/FantRS/web-chat/internal/testutil"
)

func newHandlerTestApp(userService UserService) *fiber.App {
	h := NewUser(userService, testutil.MakeNoopLogger())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/users", h.Register)
	app.Post("/users/login", h.Login)
	app.Get("/users/:id", h.GetByID)
	app.Patch("/users/:id", h.Update)
	app.Delete("/users/:id", h.Delete)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(respBody)
}

func TestUserHandler_Register_Created(t *testing.T) {
	svc := &mocks.UserService{}
	userID := uuid.New()
	svc.On("Register", mock.Anything, model.Email("user@example.com"), model.Password("s3cret")).
		Return(model.User{ID: userID, Email: "user@example.com"}, nil)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "POST", "/users", `{"email":"user@example.com","password":"s3cret"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, userID.String(), body)
	svc.AssertExpectations(t)
}

func TestUserHandler_Register_InvalidBody(t *testing.T) {
	app := newHandlerTestApp(&mocks.UserService{})

	status, body := doJSON(t, app, "POST", "/users", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", body)
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	svc := &mocks.UserService{}
	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "POST", "/users", `{"email":"not-an-email","password":"s3cret"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "invalid email")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Register_BlankPassword(t *testing.T) {
	app := newHandlerTestApp(&mocks.UserService{})

	status, body := doJSON(t, app, "POST", "/users", `{"email":"user@example.com","password":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "invalid password")
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	svc := &mocks.UserService{}
	svc.On("Register", mock.Anything, mock.Anything, mock.Anything).
		Return(model.User{}, model.ErrEmailTaken)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "POST", "/users", `{"email":"taken@example.com","password":"s3cret"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "email is already taken", body)
}

func TestUserHandler_Login_ReturnsToken(t *testing.T) {
	svc := &mocks.UserService{}
	svc.On("Login", mock.Anything, model.Email("user@example.com"), model.Password("s3cret")).
		Return("session-token", nil)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "POST", "/users/login", `{"email":"user@example.com","password":"s3cret"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "session-token", body)
}

func TestUserHandler_Login_Unauthorized(t *testing.T) {
	svc := &mocks.UserService{}
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return("", model.ErrUnauthorized)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "POST", "/users/login", `{"email":"user@example.com","password":"wrong"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid email or password", body)
}

func TestUserHandler_GetByID(t *testing.T) {
	svc := &mocks.UserService{}
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	svc.On("GetByID", mock.Anything, userID).Return(model.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: "must-not-leak",
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "GET", "/users/"+userID.String(), "")
	assert.Equal(t, fiber.StatusOK, status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, userID.String(), resp["id"])
	assert.Equal(t, "user@example.com", resp["email"])
	assert.NotContains(t, body, "must-not-leak")
}

func TestUserHandler_GetByID_BadID(t *testing.T) {
	app := newHandlerTestApp(&mocks.UserService{})

	status, body := doJSON(t, app, "GET", "/users/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid user id", body)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	svc := &mocks.UserService{}
	svc.On("GetByID", mock.Anything, mock.Anything).Return(model.User{}, model.ErrNotFound)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "GET", "/users/"+uuid.NewString(), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "record not found", body)
}

func TestUserHandler_Update(t *testing.T) {
	svc := &mocks.UserService{}
	userID := uuid.New()
	svc.On("Update", mock.Anything, userID, mock.MatchedBy(func(u model.UserUpdate) bool {
		return u.Email != nil && u.Email.String() == "new@example.com" && u.Password == nil
	})).Return(userID, nil)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "PATCH", "/users/"+userID.String(), `{"email":"new@example.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, userID.String(), body)
	svc.AssertExpectations(t)
}

func TestUserHandler_Update_Empty(t *testing.T) {
	svc := &mocks.UserService{}
	userID := uuid.New()
	svc.On("Update", mock.Anything, userID, mock.MatchedBy(func(u model.UserUpdate) bool {
		return u.IsEmpty()
	})).Return(uuid.Nil, model.ErrEmptyUpdate)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "PATCH", "/users/"+userID.String(), `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "user info is empty", body)
}

func TestUserHandler_Update_InvalidNewPassword(t *testing.T) {
	svc := &mocks.UserService{}
	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "PATCH", "/users/"+uuid.NewString(), `{"password":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "invalid password")
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &mocks.UserService{}
	userID := uuid.New()
	svc.On("Delete", mock.Anything, userID).Return(userID, nil)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "DELETE", "/users/"+userID.String(), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, userID.String(), body)
}

func TestUserHandler_InternalErrorIsOpaque(t *testing.T) {
	svc := &mocks.UserService{}
	svc.On("GetByID", mock.Anything, mock.Anything).
		Return(model.User{}, assert.AnError)

	app := newHandlerTestApp(svc)

	status, body := doJSON(t, app, "GET", "/users/"+uuid.NewString(), "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body)
}
