// Package web serves the HomeoInvent browser experience: the inventory and
// analytics tabs, the family sync page and the shared page chrome.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	platformgrpc "github.com/homeoinvent/homeoinvent/internal/platform/grpc"
	"github.com/homeoinvent/homeoinvent/internal/platform/timeouts"
	"github.com/homeoinvent/homeoinvent/internal/services/familysync"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
	"github.com/homeoinvent/homeoinvent/internal/services/web/app"
	"github.com/homeoinvent/homeoinvent/internal/services/web/modules"
	"github.com/homeoinvent/homeoinvent/internal/services/web/modules/public"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/observability"
	"github.com/homeoinvent/homeoinvent/internal/services/web/static"
)

// HealthServiceName is the gRPC health service name reported by the web process.
const HealthServiceName = "homeoinvent.web"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// GRPCAddr enables the gRPC health endpoint when set.
	GRPCAddr          string
	Store             storage.MedicineStore
	Pinger            public.Pinger
	FamilySync        *familysync.Service
	PageSize          int
	LowStockThreshold int
	ExpiryWindow      time.Duration
	Now               func() time.Time
	// Logger receives request logs. Defaults to the standard logger.
	Logger *log.Logger
}

// Server hosts the web HTTP handler and its optional gRPC health endpoint.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	health     *platformgrpc.HealthServer
}

// NewHandler composes every module with the shared middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	root, err := app.Compose(app.ComposeInput{
		Modules: modules.Default(modules.Dependencies{
			Store:             config.Store,
			Pinger:            config.Pinger,
			FamilySync:        config.FamilySync,
			PageSize:          config.PageSize,
			LowStockThreshold: config.LowStockThreshold,
			ExpiryWindow:      config.ExpiryWindow,
			Now:               config.Now,
		}),
		Static: http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer builds a configured web server. The gRPC health listener, when
// configured, is bound immediately so address errors surface at startup.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}
	if grpcAddr := strings.TrimSpace(config.GRPCAddr); grpcAddr != "" {
		health, err := platformgrpc.NewHealthServer(grpcAddr, []string{HealthServiceName}, log.Printf)
		if err != nil {
			return nil, fmt.Errorf("start grpc health: %w", err)
		}
		server.health = health
	}
	return server, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	healthErr := make(chan error, 1)
	if s.health != nil {
		go func() {
			healthErr <- s.health.Serve(ctx)
		}()
		s.health.MarkServing()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.MarkNotServing()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-healthErr:
		_ = s.httpServer.Close()
		if err == nil {
			return nil
		}
		return fmt.Errorf("serve grpc health: %w", err)
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the gRPC health listener.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Close()
	}
}
