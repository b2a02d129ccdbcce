package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/softjack/futebol-api/config"
	"github.com/softjack/futebol-api/db"
	"github.com/softjack/futebol-api/handlers"
	"github.com/softjack/futebol-api/realtime"
	"github.com/softjack/futebol-api/repositories"
	"github.com/softjack/futebol-api/routes"
	"github.com/softjack/futebol-api/services"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Hub de websocket para os eventos ao vivo dos sorteios.
	wsHub := realtime.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Repositórios
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	organizadorRepo := repositories.NewPostgresOrganizadorRepository(dbConn)
	jogadorRepo := repositories.NewPostgresJogadorRepository(dbConn)
	sorteioRepo := repositories.NewPostgresSorteioRepository(dbConn)
	timeRepo := repositories.NewPostgresTimeRepository(dbConn)
	partidaRepo := repositories.NewPostgresPartidaRepository(dbConn)
	logger.Info("repositories initialized")

	// Serviços
	emailService := services.NewEmailService(cfg, logger)
	tokenService := services.NewTokenService(cfg.JWTSecretKey)
	organizadorService := services.NewOrganizadorService(organizadorRepo)
	authService := services.NewAuthService(userRepo, organizadorRepo, emailService, logger, cfg.FrontendURL)
	jogadorService := services.NewJogadorService(jogadorRepo, organizadorService)
	sorteioService := services.NewSorteioService(dbConn, sorteioRepo, timeRepo, wsHub)
	partidaService := services.NewPartidaService(partidaRepo, wsHub)
	logger.Info("services initialized")

	// Handlers HTTP
	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, tokenService, organizadorService, jogadorService, cfg.GoogleClientID),
		Jogador:   handlers.NewJogadorHandler(jogadorService),
		Sorteio:   handlers.NewSorteioHandler(sorteioService),
		Partida:   handlers.NewPartidaHandler(partidaService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, sorteioService, logger),
	}
	logger.Info("HTTP handlers initialized")

	router := routes.InitRoutes(cfg, h, tokenService, organizadorService)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
