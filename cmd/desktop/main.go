package main

import (
	"fmt"
	"os"

	"github.com/tomz197/cybertyper/internal/audio"
	"github.com/tomz197/cybertyper/internal/config"
	"github.com/tomz197/cybertyper/internal/desktop"
	"github.com/tomz197/cybertyper/internal/loop"
	loopconfig "github.com/tomz197/cybertyper/internal/loop/config"
	"github.com/tomz197/cybertyper/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cybertyper: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := config.NewLogger(os.Stderr, "cybertyper")
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		fileLogger, logFile, err := config.NewFileLogger(path, "cybertyper")
		if err != nil {
			logger.Warn("log file unavailable", "err", err)
		} else {
			defer logFile.Close()
			logger = fileLogger
		}
	}

	highscores := store.NewFileStore(config.GetEnv("HIGHSCORE_PATH", store.DefaultPath))
	opts := []loop.Option{loop.WithLogger(logger), loop.WithStore(highscores)}

	if config.GetEnvBool("SOUND", true) {
		player, err := audio.NewPlayer(logger, audio.DefaultVolume)
		if err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		} else {
			defer player.Close()
			opts = append(opts, loop.WithSound(player))
		}
	}

	game := loop.New(loopconfig.Default(), opts...)
	if err := desktop.NewApp(game).Run(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
