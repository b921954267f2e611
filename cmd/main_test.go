package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func stubCommands(t *testing.T) (seeded *bool, servedPort *string) {
	t.Helper()
	oldSeed, oldServe := seedFunc, serveFunc
	t.Cleanup(func() { seedFunc, serveFunc = oldSeed, oldServe })

	var s bool
	var p string
	seedFunc = func(context.Context) error { s = true; return nil }
	serveFunc = func(_ context.Context, port string) error { p = port; return nil }
	return &s, &p
}

func TestRootCmd_SeedsByDefault(t *testing.T) {
	seeded, served := stubCommands(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !*seeded || *served != "" {
		t.Fatalf("expected seed only, seeded=%v served=%q", *seeded, *served)
	}
}

func TestRootCmd_Serve(t *testing.T) {
	t.Setenv("SERVER_PORT", "8181")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "port from config", args: []string{"serve"}, want: "8181"},
		{name: "port flag", args: []string{"serve", "--port", "9090"}, want: "9090"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seeded, served := stubCommands(t)

			cmd := newRootCmd()
			cmd.SetArgs(c.args)
			if err := cmd.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if *seeded || *served != c.want {
				t.Fatalf("seeded=%v served=%q want port %q", *seeded, *served, c.want)
			}
		})
	}
}

func TestRootCmd_PropagatesSeedError(t *testing.T) {
	stubCommands(t)
	seedFunc = func(context.Context) error { return errors.New("insert failed") }

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	stubCommands(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"bogus"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error for unexpected argument")
	}
}
