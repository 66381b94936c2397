package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/tomz197/cybertyper/internal/loop"
)

// note is one sine tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// releaseTime is the linear fade at the end of every note, avoiding clicks.
const releaseTime = 15 * time.Millisecond

var cueNotes = map[loop.Cue][]note{
	loop.CueHit:         {{880, 50 * time.Millisecond}},
	loop.CueStreakBonus: {{659.25, 60 * time.Millisecond}, {880, 60 * time.Millisecond}, {1318.51, 90 * time.Millisecond}},
	loop.CueDamage:      {{146.83, 90 * time.Millisecond}, {110, 140 * time.Millisecond}},
	loop.CuePanic:       {{220, 60 * time.Millisecond}},
	loop.CueLevelUp: {
		{523.25, 70 * time.Millisecond},
		{659.25, 70 * time.Millisecond},
		{783.99, 70 * time.Millisecond},
		{1046.5, 160 * time.Millisecond},
	},
	loop.CueGameOver: {{392, 160 * time.Millisecond}, {311.13, 160 * time.Millisecond}, {196, 320 * time.Millisecond}},
}

// cueDuration returns how long a cue plays.
func cueDuration(cue loop.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.dur
	}
	return d
}

// CueStreamer builds the finite streamer for cue at rate, scaled by volume
// in [0, 1].
func CueStreamer(cue loop.Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("no sound for cue %v", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %v: %w", cue, err)
		}
		total := rate.N(n.dur)
		parts = append(parts, newRelease(beep.Take(total, sine), total, rate.N(releaseTime)))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume wraps s with a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// release fades the last samples of a fixed-length stream to zero.
type release struct {
	streamer beep.Streamer
	pos      int
	total    int
	fade     int
}

func newRelease(s beep.Streamer, total, fade int) *release {
	return &release{streamer: s, total: total, fade: min(fade, total)}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	start := r.total - r.fade
	for i := 0; i < n; i++ {
		if r.pos >= start && r.fade > 0 {
			g := float64(r.total-r.pos) / float64(r.fade)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		r.pos++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }
