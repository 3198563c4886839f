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

	"github.com/introbot/chatbot-server/internal/api/http/router"
	"github.com/introbot/chatbot-server/internal/config"
	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
	mongorepo "github.com/introbot/chatbot-server/internal/repository/mongo"
	"github.com/introbot/chatbot-server/internal/server"
	"github.com/introbot/chatbot-server/internal/service"
	"github.com/introbot/chatbot-server/internal/token"
	"github.com/introbot/chatbot-server/internal/wizard"
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

	// The gateway connects lazily on first use; nothing is dialed here.
	gateway := mongorepo.NewGateway(cfg.Database.URI, cfg.Database.Name)

	userRepo := mongorepo.NewUserRepository(gateway)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(cfg.Admin.Email, cfg.Admin.Password, tokenManager, logger)
	userService := service.NewUser(userRepo, logger)

	engine := wizard.NewEngine(userService, wizard.TimerScheduler{}, cfg.Chat.TypingDelay, logger)
	sessions := wizard.NewManager(engine, cfg.Chat.MaxSessions, cfg.Chat.SessionRetention, wizard.TimerScheduler{})

	r := router.New(authService, userService, sessions, tokenManager, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(cfg.Chat.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessions.PruneIdle(cfg.Chat.IdleTimeout); n > 0 {
					logger.Info("pruned idle chat sessions", "count", n)
				}
			}
		}
	}()

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

	if err := gateway.Close(shutdownCtx); err != nil {
		logger.Error("error during storage shutdown", "error", err)
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
