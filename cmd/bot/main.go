package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelier/internal/bot"
	"hotelier/internal/config"
	"hotelier/internal/dialog"
	"hotelier/internal/hotel"
	"hotelier/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)

	// Загрузка каталога номеров из отдельного файла
	roomsPath := os.Getenv("ROOMS_PATH")
	if roomsPath == "" {
		roomsPath = "configs/rooms.yaml"
	}
	rooms, err := loadRooms(roomsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", roomsPath).Msg("load room catalog")
	}
	if len(rooms) == 0 {
		logger.Fatal().Str("path", roomsPath).Msg("room catalog is empty")
	}

	if cfg.Telegram.BotToken == "" || cfg.Telegram.BotToken == "YOUR_BOT_TOKEN_HERE" {
		logger.Fatal().Msg("telegram bot token is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inventory := hotel.NewInventory(rooms)
	ledger := hotel.NewLedger()
	desk := hotel.NewDesk(inventory, ledger)

	// Хранилище сессий: Redis, если доступен, иначе память процесса
	var store dialog.Store
	if cfg.Redis.Address != "" {
		redisClient := repository.NewRedisClient(cfg.Redis)
		if err := repository.Ping(ctx, redisClient); err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory session store")
			_ = repository.Close(redisClient)
		} else {
			store = repository.NewRedisSessionStore(redisClient, cfg.Dialog.TTL())
			defer repository.Close(redisClient)
		}
	}
	if store == nil {
		memStore := dialog.NewMemoryStore(cfg.Dialog.TTL())
		memStore.StartJanitor(ctx, time.Minute)
		store = memStore
	}

	dialogs := dialog.NewMachine(desk, store)
	metrics := bot.NewMetrics()

	if cfg.Monitoring.PrometheusEnabled {
		port := cfg.Monitoring.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go startOpsServer(ctx, port, logger)
	}

	telegramBot, err := bot.NewBot(cfg, desk, dialogs, metrics, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("create bot")
	}

	logger.Info().Str("environment", cfg.App.Environment).Msg("бот запущен")
	go telegramBot.Start(ctx)

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")
	telegramBot.Stop()
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func loadRooms(path string) ([]hotel.Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog struct {
		Rooms []hotel.Room `yaml:"rooms"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return catalog.Rooms, nil
}

// startOpsServer поднимает служебный HTTP: /healthz и /metrics.
func startOpsServer(ctx context.Context, port int, logger zerolog.Logger) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Int("port", port).Msg("ops server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("ops server")
	}
}
