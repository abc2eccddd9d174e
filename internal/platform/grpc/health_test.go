package grpc

import (
	"context"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestNewHealthServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewHealthServer(" ", nil, nil); err == nil {
		t.Fatal("expected address error")
	}
}

func TestWaitForHealthServing(t *testing.T) {
	server, stop := startHealthServer(t)
	defer stop()
	server.MarkServing()

	conn := dialHealthServer(t, server.Addr())
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitForHealth(ctx, conn, "", nil); err != nil {
		t.Fatalf("wait for health: %v", err)
	}
	if err := WaitForHealth(ctx, conn, "homeoinvent.web", nil); err != nil {
		t.Fatalf("wait for named service health: %v", err)
	}
}

func TestWaitForHealthTransitionsToServing(t *testing.T) {
	server, stop := startHealthServer(t)
	defer stop()

	conn := dialHealthServer(t, server.Addr())
	defer conn.Close()

	go func() {
		time.Sleep(200 * time.Millisecond)
		server.MarkServing()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitForHealth(ctx, conn, "", nil); err != nil {
		t.Fatalf("wait for health after transition: %v", err)
	}
}

func TestWaitForHealthRespectsContext(t *testing.T) {
	server, stop := startHealthServer(t)
	defer stop()

	conn := dialHealthServer(t, server.Addr())
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if err := WaitForHealth(ctx, conn, "", nil); err == nil {
		t.Fatal("expected context error, got nil")
	}
}

func TestDialWithHealthRejectsEmptyAddress(t *testing.T) {
	t.Parallel()

	if _, err := DialWithHealth(context.Background(), "", nil); err == nil {
		t.Fatal("expected address error")
	}
}

func TestDialWithHealthReturnsServingConnection(t *testing.T) {
	server, stop := startHealthServer(t)
	defer stop()
	server.MarkServing()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := DialWithHealth(ctx, server.Addr(), t.Logf)
	if err != nil {
		t.Fatalf("dial with health: %v", err)
	}
	_ = conn.Close()
}

func startHealthServer(t *testing.T) (*HealthServer, func()) {
	t.Helper()

	server, err := NewHealthServer("127.0.0.1:0", []string{"homeoinvent.web"}, t.Logf)
	if err != nil {
		t.Fatalf("new health server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ctx)
	}()

	stop := func() {
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("health server did not stop")
		}
	}
	return server, stop
}

func dialHealthServer(t *testing.T, addr string) *gogrpc.ClientConn {
	t.Helper()

	conn, err := gogrpc.NewClient(
		addr,
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial health server: %v", err)
	}
	return conn
}
