package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/tomz197/cybertyper/internal/loop"
)

var allCues = []loop.Cue{
	loop.CueHit,
	loop.CueStreakBonus,
	loop.CueDamage,
	loop.CuePanic,
	loop.CueLevelUp,
	loop.CueGameOver,
}

// drain streams s to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestCueStreamerLength(t *testing.T) {
	for _, cue := range allCues {
		s, err := CueStreamer(cue, SampleRate, 0.5)
		if err != nil {
			t.Fatalf("CueStreamer(%v): %v", cue, err)
		}
		want := 0
		for _, n := range cueNotes[cue] {
			want += SampleRate.N(n.dur)
		}
		got, peak := drain(t, s)
		if got != want {
			t.Errorf("%v: %d samples, want %d", cue, got, want)
		}
		if peak > 0.5+1e-9 || peak == 0 {
			t.Errorf("%v: peak %v, want in (0, 0.5]", cue, peak)
		}
		if cueDuration(cue) <= 0 {
			t.Errorf("%v: no duration", cue)
		}
	}
}

func TestCueStreamerSilentAtZeroVolume(t *testing.T) {
	s, err := CueStreamer(loop.CueHit, SampleRate, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, peak := drain(t, s); peak != 0 {
		t.Fatalf("peak = %v, want 0", peak)
	}
}

func TestCueStreamerUnknownCue(t *testing.T) {
	if _, err := CueStreamer(loop.Cue(99), SampleRate, 1); err == nil {
		t.Fatal("unknown cue produced a streamer")
	}
}

func TestReleaseEndsAtZero(t *testing.T) {
	s, err := CueStreamer(loop.CueHit, SampleRate, 1)
	if err != nil {
		t.Fatal(err)
	}
	n := SampleRate.N(cueNotes[loop.CueHit][0].dur)
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	if got != n {
		t.Fatalf("streamed %d samples, want %d", got, n)
	}
	fade := SampleRate.N(releaseTime)
	if last := math.Abs(buf[n-1][0]); last > 1/float64(fade)+1e-9 {
		t.Fatalf("last sample %v not faded", last)
	}
}

func TestPlayerQueuesCues(t *testing.T) {
	p := newPlayer(nil, DefaultVolume)
	p.Play(loop.CueHit)
	p.Play(loop.CueDamage)
	p.Play(loop.Cue(42))
	if p.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", p.Pending())
	}

	buf := make([][2]float64, 1024)
	for i := 0; i < 100 && p.Pending() > 0; i++ {
		p.mixer.Stream(buf)
	}
	if p.Pending() != 0 {
		t.Fatalf("pending = %d after draining, want 0", p.Pending())
	}

	p.Play(loop.CueLevelUp)
	p.Close()
	if p.Pending() != 0 {
		t.Fatal("Close left cues queued")
	}
}
