// Package grpc hosts the gRPC health endpoint served next to the web process
// and the client helpers that probe it.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer serves grpc.health.v1.Health for the named services.
type HealthServer struct {
	listener   net.Listener
	grpcServer *gogrpc.Server
	health     *health.Server
	services   []string
	logf       func(string, ...any)
}

// NewHealthServer listens on addr and registers the health service. Every
// service starts NOT_SERVING until MarkServing is called.
func NewHealthServer(addr string, services []string, logf func(string, ...any)) (*HealthServer, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("gRPC health address is required")
	}
	if logf == nil {
		logf = log.Printf
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	all := append([]string{""}, services...)
	for _, service := range all {
		healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	}
	return &HealthServer{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		services:   all,
		logf:       logf,
	}, nil
}

// Addr returns the listener address.
func (s *HealthServer) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MarkServing flips every registered service to SERVING.
func (s *HealthServer) MarkServing() {
	s.setAll(grpc_health_v1.HealthCheckResponse_SERVING)
}

// MarkNotServing flips every registered service to NOT_SERVING.
func (s *HealthServer) MarkNotServing() {
	s.setAll(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
}

func (s *HealthServer) setAll(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	if s == nil || s.health == nil {
		return
	}
	for _, service := range s.services {
		s.health.SetServingStatus(service, status)
	}
}

// Serve runs the gRPC server until ctx ends, then stops gracefully.
func (s *HealthServer) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("health server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.logf("gRPC health listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC health: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC health: %w", err)
	}
}

// Close stops the server immediately.
func (s *HealthServer) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

// WaitForHealth blocks until the gRPC health check reports SERVING or the context ends.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := 200 * time.Millisecond
	for {
		callCtx, cancel := context.WithTimeout(ctx, time.Second)
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			if logf != nil {
				logf("gRPC health check is SERVING")
			}
			return nil
		}
		if logf != nil {
			if err != nil {
				logf("waiting for gRPC health: %v", err)
			} else {
				logf("waiting for gRPC health: status %s", response.GetStatus().String())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		if backoff < time.Second {
			backoff = min(backoff*2, time.Second)
		}
	}
}
