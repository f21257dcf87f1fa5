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

	"github.com/s21platform/forum-service/internal/client/user"
	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/infra"
	"github.com/s21platform/forum-service/internal/pkg/jwt"
	"github.com/s21platform/forum-service/internal/pkg/tx"
	"github.com/s21platform/forum-service/internal/pkg/validator"
	"github.com/s21platform/forum-service/internal/realtime"
	db "github.com/s21platform/forum-service/internal/repository/postgres"
	"github.com/s21platform/forum-service/internal/rest"
	"github.com/s21platform/forum-service/internal/service/notify"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	userClient := user.New(cfg)
	defer userClient.Close()

	hub := realtime.NewHub()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Realtime.JWTSecret)

	notifier := notify.New(dbRepo, userClient, hub)

	handler := rest.New(dbRepo, notifier, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(cfg.Auth.JWTSecret)(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.AttachRoutes(router, handler)
	router.Get("/ws", realtime.NewHandler(hub, jwtGenerator))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
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
