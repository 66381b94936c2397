package main

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/cybertyper/internal/config"
	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/loop"
	"github.com/tomz197/cybertyper/internal/store"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/cybertyper_ed25519"
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	highscores := store.NewFileStore(config.GetEnv("HIGHSCORE_PATH", store.DefaultPath))
	logger.Info("ssh config", "host", host, "port", port, "hostKey", hostKeyPath, "highscores", highscores.Path())

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(highscores, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs one game per SSH session. Sessions share only the
// high score store.
func gameMiddleware(highscores loop.HighscoreStore, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				wish.Fatalln(sess, "CYBER TYPER needs a terminal. Connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User())
			sessLogger.Info("game session started", "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			size := newWindowSize(pty.Window)
			go size.follow(winCh)

			c := loop.NewClient(bufio.NewReader(sess), sess, loop.ClientOptions{
				TermSizeFunc: size.get,
				Store:        highscores,
				Logger:       sessLogger,
			})
			if err := c.Run(sess.Context()); err != nil {
				sessLogger.Error("game error", "err", err)
			}

			sessLogger.Info("game session ended", "highscore", c.Game().Stats().Highscore())
			next(sess)
		}
	}
}

// windowSize holds the latest PTY dimensions of one session.
type windowSize struct {
	mu   sync.RWMutex
	cols int
	rows int
}

var _ draw.TermSizeFunc = (*windowSize)(nil).get

func newWindowSize(w ssh.Window) *windowSize {
	return &windowSize{cols: w.Width, rows: w.Height}
}

// follow applies window-change requests until the channel closes with the
// session.
func (s *windowSize) follow(changes <-chan ssh.Window) {
	for w := range changes {
		s.set(w.Width, w.Height)
	}
}

func (s *windowSize) set(cols, rows int) {
	s.mu.Lock()
	s.cols, s.rows = cols, rows
	s.mu.Unlock()
}

func (s *windowSize) get() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols, s.rows, nil
}
