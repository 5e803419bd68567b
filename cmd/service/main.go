package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/courseforum/conversation-service/internal/client/centrifugo"
	"github.com/courseforum/conversation-service/internal/client/notifier"
	"github.com/courseforum/conversation-service/internal/config"
	api "github.com/courseforum/conversation-service/internal/generated"
	"github.com/courseforum/conversation-service/internal/infra"
	"github.com/courseforum/conversation-service/internal/pkg/content"
	"github.com/courseforum/conversation-service/internal/pkg/jwt"
	"github.com/courseforum/conversation-service/internal/pkg/tx"
	"github.com/courseforum/conversation-service/internal/pkg/validator"
	db "github.com/courseforum/conversation-service/internal/repository/postgres"
	"github.com/courseforum/conversation-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	notifierClient := notifier.New(cfg)
	defer notifierClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)
	preprocessor := content.New()

	handler := rest.New(dbRepo, centrifugeClient, notifierClient, vldtr, jwtGenerator, preprocessor, cfg.Pagination)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
