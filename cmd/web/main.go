package main

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomz197/cybertyper/internal/config"
	"github.com/tomz197/cybertyper/internal/store"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
	pollEvery   = time.Second
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	s := &site{
		page:       htmlPage,
		sshHost:    config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		sshPort:    config.GetEnv("SSH_PORT", "2222"),
		highscores: store.NewFileStore(config.GetEnv("HIGHSCORE_PATH", store.DefaultPath)),
		poll:       pollEvery,
		logger:     logger,
	}

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(s),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting web server", "url", "http://"+addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done
	logger.Info("shutting down web server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
