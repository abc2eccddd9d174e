// Package healthcheck probes the web process gRPC health endpoint.
package healthcheck

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/homeoinvent/homeoinvent/internal/platform/cmd"
	platformgrpc "github.com/homeoinvent/homeoinvent/internal/platform/grpc"
)

// Config holds healthcheck command configuration.
type Config struct {
	Addr    string        `env:"HOMEOINVENT_WEB_GRPC_ADDR" envDefault:"localhost:8081"`
	Timeout time.Duration `env:"HOMEOINVENT_HEALTHCHECK_TIMEOUT" envDefault:"3s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC health address to probe")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "How long to wait for SERVING")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return Config{}, fmt.Errorf("health address is required")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// Run waits until the endpoint reports SERVING or the timeout elapses.
func Run(ctx context.Context, cfg Config, logf func(string, ...any)) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Addr, logf)
	if err != nil {
		return fmt.Errorf("probe %s: %w", cfg.Addr, err)
	}
	return conn.Close()
}
