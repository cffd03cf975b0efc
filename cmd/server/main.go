package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Joaolrm/quantodeu/internal/auth"
	"github.com/Joaolrm/quantodeu/internal/config"
	"github.com/Joaolrm/quantodeu/internal/handler"
	"github.com/Joaolrm/quantodeu/internal/notification"
	"github.com/Joaolrm/quantodeu/internal/router"
	"github.com/Joaolrm/quantodeu/internal/service"
	"github.com/Joaolrm/quantodeu/internal/storage"
	"github.com/Joaolrm/quantodeu/internal/storage/postgres"
	"github.com/Joaolrm/quantodeu/internal/storage/sqlite"
	"github.com/Joaolrm/quantodeu/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	var store storage.Store
	switch cfg.DBDriver {
	case "postgres":
		store, err = postgres.New(context.Background(), cfg.DatabaseURL)
	default:
		store, err = sqlite.New(cfg.DBPath)
	}
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DBDriver)

	notifier, err := notification.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		slog.Error("Failed to initialize notifications", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	h := handler.New(
		service.NewPeopleService(store, jwtManager),
		service.NewEventService(store, notifier),
		service.NewItemService(store),
		service.NewReportService(store),
	)
	engine := router.New(h, jwtManager)

	// h2c lets HTTP/2 clients connect without TLS, which is terminated at
	// the proxy in front of this server.
	h2cHandler := h2c.NewHandler(engine, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
