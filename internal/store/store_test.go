package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "game_data.json"))
	got, err := s.Load()
	if err != nil || got != 0 {
		t.Fatalf("Load() = %d, %v; want 0, nil", got, err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_data.json")
	s := NewFileStore(path)
	if err := s.Save(80); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != `{"highscore":80}` {
		t.Fatalf("file = %s", data)
	}

	got, err := NewFileStore(path).Load()
	if err != nil || got != 80 {
		t.Fatalf("Load() = %d, %v; want 80, nil", got, err)
	}
}

func TestSaveKeepsHigherValue(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "hs.json"))
	for _, score := range []int{50, 80, 30, -1} {
		if err := s.Save(score); err != nil {
			t.Fatalf("Save(%d): %v", score, err)
		}
	}
	got, _ := s.Load()
	if got != 80 {
		t.Fatalf("highscore = %d, want 80", got)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json"},
		{"wrong type", `{"highscore":"lots"}`},
		{"negative", `{"highscore":-3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hs.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := NewFileStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("err = %v, want ErrCorrupt", err)
			}
			if got != 0 {
				t.Fatalf("got %d, want 0", got)
			}
		})
	}
}

func TestSaveOverwritesCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Save(20); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, err := s.Load(); err != nil || got != 20 {
		t.Fatalf("Load() = %d, %v; want 20, nil", got, err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "hs.json"))
	if err := s.Save(10); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1", len(entries))
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "hs.json"))
	if err := s.Save(10); err == nil {
		t.Fatal("Save into a missing directory succeeded")
	}
}

func TestConcurrentSaves(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "hs.json"))
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_ = s.Save(score * 10)
		}(i)
	}
	wg.Wait()
	if got, _ := s.Load(); got != 200 {
		t.Fatalf("highscore = %d, want 200", got)
	}
}

func TestDefaultPath(t *testing.T) {
	if NewFileStore("").Path() != DefaultPath {
		t.Fatal("empty path did not fall back to the default")
	}
}
