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

	"github.com/joho/godotenv"

	"github.com/avelichko/reminder-server/internal/api/http/reqcontext"
	"github.com/avelichko/reminder-server/internal/api/http/router"
	"github.com/avelichko/reminder-server/internal/config"
	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
	"github.com/avelichko/reminder-server/internal/password"
	"github.com/avelichko/reminder-server/internal/repository/postgres"
	"github.com/avelichko/reminder-server/internal/server"
	"github.com/avelichko/reminder-server/internal/service"
	"github.com/avelichko/reminder-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

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
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	reminderRepo := postgres.NewReminderRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	hasher := password.NewHasher()

	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, cfg.JWT.RefreshTTL, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	reminderService := service.NewReminder(reminderRepo, logger)
	ctxMgr := reqcontext.NewManager()

	httpServer := registerHTTPServer(
		logger,
		authService,
		reminderService,
		tokenService,
		ctxMgr,
		cfg.HTTP.SecureCookies,
		cfg.JWT.RefreshTTL,
		fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

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
	logger *logger.Logger,
	authService *service.Auth,
	reminderService *service.Reminder,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	secureCookies bool,
	refreshTTL time.Duration,
	addr string,
) *server.HTTPServer {
	r := router.New(authService, reminderService, tokenService, ctxMgr, secureCookies, refreshTTL, logger)
	e := r.Register()

	return server.NewHTTPServer(e, addr)
}
