// Package audio voices game cues with synthesized tones.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/cybertyper/internal/loop"
)

const (
	// SampleRate is the output rate of every cue.
	SampleRate = beep.SampleRate(44100)

	// DefaultVolume is the linear gain applied to all cues.
	DefaultVolume = 0.25

	bufferTime = 100 * time.Millisecond
)

// Player mixes cues onto the system speaker. It implements loop.Sound.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	volume   float64
	logger   *log.Logger
	attached bool // mixer is playing on the speaker
}

var _ loop.Sound = (*Player)(nil)

// NewPlayer opens the speaker and starts the mixer. On error the returned
// player is still usable and stays silent.
func NewPlayer(logger *log.Logger, volume float64) (*Player, error) {
	p := newPlayer(logger, volume)
	if err := speaker.Init(SampleRate, SampleRate.N(bufferTime)); err != nil {
		return p, err
	}
	speaker.Play(p.mixer)
	p.attached = true
	return p, nil
}

func newPlayer(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Play queues cue on the mixer and returns immediately.
func (p *Player) Play(cue loop.Cue) {
	s, err := CueStreamer(cue, SampleRate, p.volume)
	if err != nil {
		p.logger.Debug("cue not played", "cue", cue, "err", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.attached {
		// Without a speaker the mixer is only drained by tests.
		p.mixer.Add(s)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Pending returns the number of cues still sounding.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.attached {
		return p.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close silences all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.attached {
		p.mixer.Clear()
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.attached = false
}
