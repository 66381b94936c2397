package object

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/loop/config"
	"github.com/tomz197/cybertyper/internal/physics"
)

// recordingSurface captures draw calls.
type recordingSurface struct {
	texts   []textCall
	rects   []rectCall
	strokes []rectCall
}

type textCall struct {
	s    string
	x, y float64
	c    color.NRGBA
}

type rectCall struct {
	r physics.Rect
	c color.NRGBA
}

func (s *recordingSurface) Fill(color.NRGBA) {}
func (s *recordingSurface) FillRect(r physics.Rect, c color.NRGBA) {
	s.rects = append(s.rects, rectCall{r, c})
}
func (s *recordingSurface) StrokeRect(r physics.Rect, c color.NRGBA) {
	s.strokes = append(s.strokes, rectCall{r, c})
}
func (s *recordingSurface) DrawText(str string, x, y, _ float64, c color.NRGBA) {
	s.texts = append(s.texts, textCall{str, x, y, c})
}
func (s *recordingSurface) MeasureText(str string, size float64) (float64, float64) {
	return float64(len(str)) * 10, size
}

type sliceSpawner struct {
	objs []Object
}

func (s *sliceSpawner) Spawn(obj Object) {
	s.objs = append(s.objs, obj)
}

func testContext(s draw.Surface, dx, dy float64) DrawContext {
	return DrawContext{Surface: s, Offset: draw.Point{X: dx, Y: dy}, Palette: config.Default().Palette}
}

func TestMeteorCheckMatch(t *testing.T) {
	m := NewMeteor("hacker", 100, 1.5)
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"h", true},
		{"hack", true},
		{"hacker", true},
		{"hackers", false},
		{"Hack", false},
		{"x", false},
	}
	for _, tt := range tests {
		m.CheckMatch(tt.input)
		if m.Highlighted != tt.want {
			t.Fatalf("CheckMatch(%q) highlighted = %v, want %v", tt.input, m.Highlighted, tt.want)
		}
	}
	if m.Matches("hack") {
		t.Fatalf("prefix %q destroyed the meteor", "hack")
	}
	if !m.Matches("hacker") {
		t.Fatalf("exact text did not match")
	}
}

func TestMeteorUpdate(t *testing.T) {
	m := NewMeteor("node", 100, 2.5)
	if m.Y != MeteorSpawnY {
		t.Fatalf("spawn Y = %v, want %d", m.Y, MeteorSpawnY)
	}
	for i := 0; i < 4; i++ {
		if m.Update() {
			t.Fatalf("meteor asked to be removed")
		}
	}
	if m.Y != MeteorSpawnY+10 {
		t.Fatalf("Y after 4 frames = %v, want %d", m.Y, MeteorSpawnY+10)
	}
}

func TestRandomMeteorBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		m := RandomMeteor(rng, "data", 900, 0.6)
		if m.X < 50 || m.X > 750 {
			t.Fatalf("x = %v outside [50, 750]", m.X)
		}
		if m.X != math.Trunc(m.X) {
			t.Fatalf("x = %v is not a whole pixel", m.X)
		}
		if m.Speed < 1.6 || m.Speed >= 2.6 {
			t.Fatalf("speed = %v outside [1.6, 2.6)", m.Speed)
		}
		if m.Y != MeteorSpawnY {
			t.Fatalf("y = %v, want %d", m.Y, MeteorSpawnY)
		}
	}
}

func TestMeteorDrawGlow(t *testing.T) {
	pal := config.Default().Palette
	s := &recordingSurface{}
	m := NewMeteor("neon", 100, 1)
	m.Y = 200

	m.Draw(testContext(s, 3, -2))
	if len(s.texts) != 1 || s.texts[0].x != 103 || s.texts[0].y != 198 || s.texts[0].c != pal.TextMain {
		t.Fatalf("plain draw = %+v", s.texts)
	}

	s.texts = nil
	m.CheckMatch("ne")
	m.Draw(testContext(s, 0, 0))
	if len(s.texts) != 3 {
		t.Fatalf("highlighted draw made %d text calls, want 3", len(s.texts))
	}
	for _, call := range s.texts {
		if call.c != pal.NeonCyan {
			t.Fatalf("highlighted colour = %v, want cyan", call.c)
		}
	}
}

func TestParticleLifecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := color.NRGBA{0, 255, 255, 255}
	p := NewParticle(10, 20, c, rng)

	speed := math.Hypot(p.VX, p.VY)
	if speed < 2 || speed >= 5 {
		t.Fatalf("speed = %v outside [2, 5)", speed)
	}
	if p.Size < 2 || p.Size > 4 {
		t.Fatalf("size = %v outside [2, 4]", p.Size)
	}

	frames := 0
	for !p.Update() {
		frames++
		if frames > 100 {
			t.Fatalf("particle never expired")
		}
	}
	// 255 - 8*32 = -1: removed on the 32nd update.
	if frames != 31 {
		t.Fatalf("particle survived %d updates, want 31", frames)
	}
}

func TestParticleDrawFades(t *testing.T) {
	s := &recordingSurface{}
	p := &Particle{X: 5, Y: 6, Size: 3, Life: 100, Color: color.NRGBA{1, 2, 3, 255}}
	p.Draw(testContext(s, 1, 1))
	if len(s.rects) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(s.rects))
	}
	got := s.rects[0]
	if got.r != (physics.Rect{X: 6, Y: 7, W: 3, H: 3}) || got.c.A != 100 {
		t.Fatalf("draw = %+v", got)
	}

	s.rects = nil
	p.Life = 0
	p.Draw(testContext(s, 0, 0))
	if len(s.rects) != 0 {
		t.Fatalf("dead particle drawn")
	}
}

func TestSpawnBurst(t *testing.T) {
	sp := &sliceSpawner{}
	SpawnBurst(1, 2, color.NRGBA{}, ParticleBurstSize, rand.New(rand.NewSource(3)), sp)
	if len(sp.objs) != ParticleBurstSize {
		t.Fatalf("spawned %d, want %d", len(sp.objs), ParticleBurstSize)
	}
	for _, obj := range sp.objs {
		if _, ok := obj.(*Particle); !ok {
			t.Fatalf("spawned %T, want *Particle", obj)
		}
	}
	SpawnBurst(1, 2, color.NRGBA{}, 3, rand.New(rand.NewSource(3)), nil)
}

func TestFloatingTextLifecycle(t *testing.T) {
	f := NewFloatingText(100, 300, "+10", color.NRGBA{0, 255, 255, 255})
	frames := 0
	for !f.Update() {
		frames++
	}
	// 255/5 = 51 updates to reach zero.
	if frames != 50 {
		t.Fatalf("label survived %d updates, want 50", frames)
	}
	if f.Y != 300-2*51 {
		t.Fatalf("Y = %v, want %d", f.Y, 300-2*51)
	}
}

func TestFloatingTextDraw(t *testing.T) {
	s := &recordingSurface{}
	f := NewFloatingText(100, 300, "-20 HP", color.NRGBA{255, 50, 50, 255})
	f.Update()
	f.Draw(testContext(s, -4, 0))
	if len(s.texts) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(s.texts))
	}
	got := s.texts[0]
	if got.s != "-20 HP" || got.x != 96 || got.y != 298 || got.c.A != 250 {
		t.Fatalf("draw = %+v", got)
	}
}

func TestUpdateAllPrunes(t *testing.T) {
	texts := []*FloatingText{
		{Life: 5},
		{Life: 200},
		{Life: 3},
	}
	texts = UpdateAll(texts)
	if len(texts) != 1 || texts[0].Life != 195 {
		t.Fatalf("survivors = %+v", texts)
	}
}

func TestButtonHoverAndClick(t *testing.T) {
	clicks := 0
	b := NewButton("START", 450, 350, func() { clicks++ })

	b.CheckHover(10, 10)
	if b.HandleClick() || clicks != 0 {
		t.Fatalf("click outside ran action")
	}

	b.CheckHover(450, 350)
	if !b.Hovered {
		t.Fatalf("center not hovered")
	}
	if !b.HandleClick() || clicks != 1 {
		t.Fatalf("click on hovered button did not run action")
	}

	b.CheckHover(549, 374)
	if !b.Hovered {
		t.Fatalf("inner corner not hovered")
	}
	b.CheckHover(550, 375)
	if b.Hovered {
		t.Fatalf("outer corner hovered")
	}
}

func TestButtonDraw(t *testing.T) {
	pal := config.Default().Palette
	s := &recordingSurface{}
	b := NewButton("QUIT", 450, 450, nil)
	b.Draw(testContext(s, 9, 9))
	if len(s.strokes) != 1 || s.strokes[0].c != pal.Muted || s.strokes[0].r != b.Rect {
		t.Fatalf("idle outline = %+v", s.strokes)
	}
	if len(s.texts) != 1 || s.texts[0].x != 430 || s.texts[0].y != 425 {
		t.Fatalf("label = %+v", s.texts)
	}

	b.Hovered = true
	s.strokes = nil
	b.Draw(testContext(s, 0, 0))
	if s.strokes[0].c != pal.NeonCyan {
		t.Fatalf("hovered outline colour = %v, want cyan", s.strokes[0].c)
	}
	if b.HandleClick() {
		t.Fatalf("nil action reported as run")
	}
}
