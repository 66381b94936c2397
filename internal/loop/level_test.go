package loop

import (
	"math"
	"math/rand"
	"testing"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.want {
			t.Errorf("LevelForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestCheckLevelUpNeverDecreases(t *testing.T) {
	l := NewLevelManager()
	if l.Level() != 1 {
		t.Fatalf("initial level = %d, want 1", l.Level())
	}
	if l.CheckLevelUp(-5) {
		t.Fatal("negative score leveled up")
	}
	if !l.CheckLevelUp(210) {
		t.Fatal("score 210 did not level up")
	}
	if l.Level() != 3 {
		t.Fatalf("level = %d, want 3", l.Level())
	}
	if l.CheckLevelUp(210) {
		t.Fatal("same score leveled up twice")
	}
	if l.CheckLevelUp(50) || l.Level() != 3 {
		t.Fatalf("level dropped to %d after score fell", l.Level())
	}
}

func TestSpawnDelayFloor(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 85},
		{2, 80},
		{13, 25},
		{14, 20},
		{30, 20},
	}
	for _, tt := range tests {
		if got := SpawnDelayForLevel(tt.level); got != tt.want {
			t.Errorf("SpawnDelayForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestSpeedMultiplier(t *testing.T) {
	l := NewLevelManager()
	l.CheckLevelUp(400)
	if got := l.SpeedMultiplier(); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("SpeedMultiplier at level 5 = %v, want 1.5", got)
	}
}

func TestScreenShakeDecay(t *testing.T) {
	s := NewScreenShake(rand.New(rand.NewSource(7)))
	s.Trigger(10)

	frames := 0
	for s.intensity > shakeThreshold {
		before := s.intensity
		s.Update()
		off := s.Offset()
		if math.Abs(off.X) > before || math.Abs(off.Y) > before {
			t.Fatalf("offset %+v exceeds intensity %v", off, before)
		}
		frames++
		if frames > 100 {
			t.Fatal("shake never settled")
		}
	}
	// 10 * 0.9^29 is the first value at or below 0.5.
	if frames != 29 {
		t.Fatalf("settled after %d frames, want 29", frames)
	}

	s.Update()
	if off := s.Offset(); off.X != 0 || off.Y != 0 {
		t.Fatalf("offset after settling = %+v, want zero", off)
	}
}

func TestScreenShakeTriggerOverwrites(t *testing.T) {
	s := NewScreenShake(rand.New(rand.NewSource(1)))
	s.Trigger(20)
	s.Trigger(5)
	if s.intensity != 5 {
		t.Fatalf("intensity = %v, want 5", s.intensity)
	}
}
