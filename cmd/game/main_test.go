package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReturnsErrorWithoutTerminal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOUND", "off")
	t.Setenv("LOG_FILE", filepath.Join(dir, "game.log"))
	t.Setenv("HIGHSCORE_PATH", filepath.Join(dir, "game_data.json"))

	stdin, err := os.Create(filepath.Join(dir, "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()

	err = run(stdin)
	if err == nil || !strings.Contains(err.Error(), "raw mode") {
		t.Fatalf("run() = %v, want a raw mode error", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "game.log")); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
