package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FantRS/web-chat/internal/api/http/handler"
	"github.com/FantRS/web-chat/internal/api/http/middleware"
	"github.com/FantRS/web-chat/internal/logger"
)

// Router wires HTTP handlers and middleware into a fiber application.
type Router struct {
	userService  handler.UserService
	tokenManager middleware.TokenParser
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(userService handler.UserService, tokenManager middleware.TokenParser, logger *logger.Logger) *Router {
	return &Router{
		userService:  userService,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register builds the fiber application: request logging, user routes,
// and the token gate on everything except registration and login.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)

	app.Use(logging.Handle)

	app.Post("/users", userHandler.Register)
	app.Post("/users/login", userHandler.Login)

	app.Get("/users/:id", authenticate.Handle, userHandler.GetByID)
	app.Patch("/users/:id", authenticate.Handle, userHandler.Update)
	app.Delete("/users/:id", authenticate.Handle, userHandler.Delete)

	return app
}
