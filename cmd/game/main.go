package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/cybertyper/internal/audio"
	"github.com/tomz197/cybertyper/internal/config"
	"github.com/tomz197/cybertyper/internal/loop"
	"github.com/tomz197/cybertyper/internal/store"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "cybertyper: %v\n", err)
		os.Exit(1)
	}
}

// run plays one session on the terminal behind stdin. Every deferred
// cleanup, raw mode restore included, has happened by the time it returns.
func run(stdin *os.File) error {
	logger, logFile, err := config.NewFileLogger(config.GetEnv("LOG_FILE", ""), "cybertyper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer logFile.Close()

	highscores := store.NewFileStore(config.GetEnv("HIGHSCORE_PATH", store.DefaultPath))
	opts := loop.ClientOptions{
		Store:  highscores,
		Logger: logger,
	}

	if config.GetEnvBool("SOUND", true) {
		player, err := audio.NewPlayer(logger, audio.DefaultVolume)
		if err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	fd := int(stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := loop.NewClient(bufio.NewReader(stdin), os.Stdout, opts)
	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	logger.Info("session ended", "highscore", c.Game().Stats().Highscore())
	return nil
}
