package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/config"
	"notelist-app/notelist/database"
	"notelist-app/notelist/routes"
	"notelist-app/notelist/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Setup(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	producer, err := broker.InitProducer(cfg)
	if err != nil {
		logger.Warn("failed to initialize NATS producer, event dispatch is disabled", zap.Error(err))
	} else {
		defer producer.Close()

		eventHandlerService := services.NewEventHandlerService(db, producer, time.Duration(cfg.EventDispatchInterval)*time.Second)
		eventHandlerService.Start()
		defer eventHandlerService.Stop()
	}

	tagResolver := services.NewTagResolver(cfg.TagNamesCaseSensitive)
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)

	router := routes.NewRouter(db, cfg.AllowedOrigins, routes.Services{
		Auth:     authService,
		User:     services.NewUserService(authService),
		Notebook: services.NewNotebookService(),
		Tag:      services.NewTagService(tagResolver),
		Note:     services.NewNoteService(tagResolver),
		Search:   services.NewSearchService(),
	})

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("API server is running", zap.String("port", cfg.AppPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}
