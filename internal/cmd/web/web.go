// Package web parses web command flags and launches the inventory web server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/homeoinvent/homeoinvent/internal/platform/cmd"
	"github.com/homeoinvent/homeoinvent/internal/services/familysync"
	sqlitestore "github.com/homeoinvent/homeoinvent/internal/services/inventory/storage/sqlite"
	"github.com/homeoinvent/homeoinvent/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr          string        `env:"HOMEOINVENT_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	GRPCAddr          string        `env:"HOMEOINVENT_WEB_GRPC_ADDR"`
	DBPath            string        `env:"HOMEOINVENT_WEB_DB_PATH" envDefault:"data/inventory.db"`
	PageSize          int           `env:"HOMEOINVENT_WEB_PAGE_SIZE" envDefault:"25"`
	LowStockThreshold int           `env:"HOMEOINVENT_WEB_LOW_STOCK_THRESHOLD" envDefault:"2"`
	ExpiryWindow      time.Duration `env:"HOMEOINVENT_WEB_EXPIRY_WINDOW" envDefault:"720h"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address (empty disables)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite inventory database path")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Remedies per inventory page")
	fs.IntVar(&cfg.LowStockThreshold, "low-stock-threshold", cfg.LowStockThreshold, "Quantity at or below which a remedy is low on stock")
	fs.DurationVar(&cfg.ExpiryWindow, "expiry-window", cfg.ExpiryWindow, "Window in which a remedy counts as expiring soon")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("database path is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold must not be negative, got %d", c.LowStockThreshold)
	}
	if c.ExpiryWindow <= 0 {
		return fmt.Errorf("expiry window must be positive, got %s", c.ExpiryWindow)
	}
	return nil
}

// Run opens the inventory store and serves the web surface until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	if dir := filepath.Dir(cfg.DBPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlitestore.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open inventory store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close inventory store: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:          cfg.HTTPAddr,
		GRPCAddr:          cfg.GRPCAddr,
		Store:             store,
		Pinger:            store,
		FamilySync:        familysync.New(log.Printf),
		PageSize:          cfg.PageSize,
		LowStockThreshold: cfg.LowStockThreshold,
		ExpiryWindow:      cfg.ExpiryWindow,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
