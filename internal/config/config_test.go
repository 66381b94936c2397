package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CYBERTYPER_TEST_HOST", "example.org")
	if got := GetEnv("CYBERTYPER_TEST_HOST", "localhost"); got != "example.org" {
		t.Fatalf("GetEnv = %q, want example.org", got)
	}
	if got := GetEnv("CYBERTYPER_TEST_UNSET", "localhost"); got != "localhost" {
		t.Fatalf("GetEnv fallback = %q, want localhost", got)
	}

	t.Setenv("CYBERTYPER_TEST_EMPTY", "")
	if got := GetEnv("CYBERTYPER_TEST_EMPTY", "x"); got != "" {
		t.Fatalf("GetEnv on empty value = %q, want empty", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"on", false, true},
		{"OFF", true, false},
		{" true ", false, true},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("CYBERTYPER_TEST_SOUND", tt.value)
		if got := GetEnvBool("CYBERTYPER_TEST_SOUND", tt.fallback); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
	if !GetEnvBool("CYBERTYPER_TEST_UNSET", true) {
		t.Fatal("unset variable ignored the fallback")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("output = %q", out)
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "loud")
	if got := NewLogger(&bytes.Buffer{}, "").GetLevel(); got != log.InfoLevel {
		t.Fatalf("level = %v, want info", got)
	}
}

func TestNewFileLogger(t *testing.T) {
	t.Setenv(LogLevelEnv, "info")
	logger, closer, err := NewFileLogger("", "game")
	if err != nil || logger == nil || closer == nil {
		t.Fatalf("empty path: %v", err)
	}

	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err = NewFileLogger(path, "game")
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	logger.Info("started")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "started") {
		t.Fatalf("log file = %q", data)
	}

	if _, _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "x.log"), ""); err == nil {
		t.Fatal("opening a log file in a missing directory succeeded")
	}
}
