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

	"github.com/rpauls02/F1StatFinder-backend/cache"
	"github.com/rpauls02/F1StatFinder-backend/config"
	"github.com/rpauls02/F1StatFinder-backend/handlers"
	api "github.com/rpauls02/F1StatFinder-backend/routes"
	"github.com/rpauls02/F1StatFinder-backend/services"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("upstream", cfg.ErgastBaseURL))

	// Открытие дискового кэша
	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		logger.Error("failed to open cache", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close cache", slog.Any("error", err))
		} else {
			logger.Info("cache closed")
		}
	}()
	logger.Info("disk cache opened", slog.String("dir", cfg.CacheDir))

	// Клиент статистики: HTTP -> circuit breaker -> дисковый кэш
	ergast := upstream.NewErgastClient(cfg.ErgastBaseURL, cfg.UpstreamTimeout)
	client := upstream.NewCachedClient(ergast, store, cfg.CacheTTL, cfg.ArchiveTTL, logger)
	logger.Info("upstream client initialized")

	// Инициализация сервисов
	classifier := services.StatusClassifier{
		FinishedPrefixes: cfg.FinishedStatusPrefixes,
		LappedSubstring:  cfg.LappedStatusSubstring,
	}
	scheduleService := services.NewScheduleService(client, logger)
	standingsService := services.NewStandingsService(client, logger)
	statsService := services.NewStatsService(client, classifier, logger)
	resultsService := services.NewResultsService(client, logger)
	championsService := services.NewChampionsService(client, cfg.ChampionsDepth, cfg.RecentWinners, logger)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP и маршрутизатора
	router := api.InitRoutes(api.Handlers{
		Schedule:  handlers.NewScheduleHandler(scheduleService),
		Standings: handlers.NewStandingsHandler(standingsService),
		Stats:     handlers.NewStatsHandler(statsService),
		Results:   handlers.NewResultsHandler(resultsService),
		Champions: handlers.NewChampionsHandler(championsService),
	}, cfg.CORSOrigins)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
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
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
