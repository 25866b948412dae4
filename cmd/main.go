package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/FantRS/web-chat/internal/api/http/router"
	"github.com/FantRS/web-chat/internal/config"
	"github.com/FantRS/web-chat/internal/logger"
	"github.com/FantRS/web-chat/internal/model"
	"github.com/FantRS/web-chat/internal/password"
	"github.com/FantRS/web-chat/internal/repository/postgres"
	"github.com/FantRS/web-chat/internal/server"
	"github.com/FantRS/web-chat/internal/service"
	"github.com/FantRS/web-chat/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewHasher(password.Params{
		Time:          cfg.Argon2.Time,
		MemKiB:        cfg.Argon2.MemKiB,
		Par:           cfg.Argon2.Par,
		MaxConcurrent: cfg.Argon2.MaxConcurrent,
	})

	userService := service.NewUser(userRepo, hasher, tokenManager, logger)

	httpServer := registerHTTPServer(userService, tokenManager, logger, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	userService *service.User,
	tokenManager *token.JWT,
	logger *logger.Logger,
	addr string,
) *server.HTTPServer {
	r := router.New(userService, tokenManager, logger)
	app := r.Register()

	return server.NewHTTPServer(app, addr)
}
