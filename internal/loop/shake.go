package loop

import (
	"math/rand"

	"github.com/tomz197/cybertyper/internal/draw"
)

const (
	shakeDecay     = 0.9
	shakeThreshold = 0.5
)

// ScreenShake produces an exponentially decaying random render offset.
type ScreenShake struct {
	intensity float64
	offset    draw.Point
	rng       *rand.Rand
}

// NewScreenShake creates an idle shake using rng for offsets.
func NewScreenShake(rng *rand.Rand) *ScreenShake {
	return &ScreenShake{rng: rng}
}

// Trigger sets the intensity, replacing any shake in progress.
func (s *ScreenShake) Trigger(amount float64) {
	s.intensity = amount
}

// Update picks this frame's offset and decays the intensity.
func (s *ScreenShake) Update() {
	if s.intensity > shakeThreshold {
		s.offset.X = s.uniform()
		s.offset.Y = s.uniform()
		s.intensity *= shakeDecay
		return
	}
	s.offset = draw.Point{}
	s.intensity = 0
}

// Offset returns the offset for the current frame.
func (s *ScreenShake) Offset() draw.Point {
	return s.offset
}

func (s *ScreenShake) uniform() float64 {
	return -s.intensity + s.rng.Float64()*2*s.intensity
}
