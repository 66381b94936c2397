package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/physics"
)

// Particle tuning.
const (
	ParticleLife      = 255 // Initial life, also the starting alpha
	ParticleFade      = 8   // Life lost per frame
	ParticleBurstSize = 12  // Particles per hit or impact
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived spark with no gameplay effect.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per frame
	Life   int     // Remaining life; drawn with this alpha
	Size   float64 // Square side in pixels
	Color  color.NRGBA
}

// NewParticle creates a particle from the pool, flying in a random direction
// at a random speed in [2, 5) px/frame.
func NewParticle(x, y float64, c color.NRGBA, rng *rand.Rand) *Particle {
	angle := rng.Float64() * 2 * math.Pi
	speed := 2 + rng.Float64()*3

	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX, p.VY = physics.Velocity(angle, speed)
	p.Life = ParticleLife
	p.Size = float64(2 + rng.Intn(3))
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst emits count particles at (x, y).
func SpawnBurst(x, y float64, c color.NRGBA, count int, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		spawner.Spawn(NewParticle(x, y, c, rng))
	}
}

// Update moves the particle and fades it.
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= ParticleFade
	return p.Life <= 0
}

// Draw renders the particle as an alpha-faded square.
func (p *Particle) Draw(ctx DrawContext) {
	if p.Life <= 0 {
		return
	}
	r := physics.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}.Translate(ctx.Offset.X, ctx.Offset.Y)
	ctx.Surface.FillRect(r, draw.WithAlpha(p.Color, p.Life))
}
