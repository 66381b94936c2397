package loop

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/input"
	"github.com/tomz197/cybertyper/internal/loop/config"
	"github.com/tomz197/cybertyper/internal/object"
	"github.com/tomz197/cybertyper/internal/physics"
)

// HUD layout.
const (
	inputBarHeight = 60
	inputFontSize  = 50
	tipFontSize    = 20
	hudFontSize    = 36
	popupFontSize  = 100
	hudColumnWidth = 180
	healthBarX     = 20
	healthBarY     = 20
	healthBarH     = 20
)

const panicTip = "PRESS ENTER TO CLEAR TYPO (-5 PTS)"

// handlePlayingEvent applies typing, backspace, panic-clear and quit.
func (g *Game) handlePlayingEvent(ev input.Event) {
	switch ev.Kind {
	case input.EventRune:
		if unicode.IsLetter(ev.Rune) {
			g.input += string(ev.Rune)
		}
	case input.EventBackspace:
		if g.input != "" {
			_, size := utf8.DecodeLastRuneInString(g.input)
			g.input = g.input[:len(g.input)-size]
		}
	case input.EventEnter:
		g.panicClear()
	case input.EventEscape:
		g.endGame()
	}
}

// panicClear throws away a non-empty buffer at a cost.
func (g *Game) panicClear() {
	if g.input == "" {
		return
	}
	g.input = ""
	g.stats.AddScore(-config.PanicPenalty)
	g.stats.ResetStreak()
	g.shake.Trigger(config.ShakePanic)
	g.Spawn(object.NewFloatingText(
		float64(g.cfg.Width/2), float64(g.cfg.Height-60),
		fmt.Sprintf("-%d (Panic)", config.PanicPenalty), g.cfg.Palette.Error))
	g.sound.Play(CuePanic)
}

// updatePlayingState runs one frame of gameplay.
func (g *Game) updatePlayingState() {
	g.damageFlash = false

	if g.level.CheckLevelUp(g.stats.Score()) {
		g.levelUpTimer = config.LevelUpPopupFrames
		g.shake.Trigger(config.ShakeLevelUp)
		g.sound.Play(CueLevelUp)
		g.logger.Debug("level up", "level", g.level.Level(), "spawnDelay", g.level.SpawnDelay())
	}

	g.spawnTimer++
	if g.spawnTimer > g.level.SpawnDelay() {
		g.spawnMeteor()
		g.spawnTimer = 0
	}

	g.updateMeteors()

	g.particles = object.UpdateAll(g.particles)
	g.floaters = object.UpdateAll(g.floaters)

	g.popupVisible = false
	if g.levelUpTimer > 0 {
		g.levelUpTimer--
		g.popupVisible = g.levelUpTimer%10 < 5
	}

	if !g.stats.IsAlive() {
		g.endGame()
	}
}

// spawnMeteor drops a random word at the current level's speed.
func (g *Game) spawnMeteor() {
	text := words[g.rng.Intn(len(words))]
	g.Spawn(object.RandomMeteor(g.rng, text, g.cfg.Width, g.level.SpeedMultiplier()))
}

// updateMeteors moves every meteor and resolves matches and misses.
// A match is checked before the miss for each meteor. The first meteor past
// the bottom ends the pass for this frame, so at most one miss is applied
// per frame even when several meteors are below the edge.
func (g *Game) updateMeteors() {
	hit := -1
	for i, m := range g.meteors {
		m.CheckMatch(g.input)
		m.Update()

		if m.Matches(g.input) {
			hit = i
			g.destroyMeteor(m)
		} else if m.Y > float64(g.cfg.Height) {
			g.meteorImpact(m)
			g.meteors = slices.Delete(g.meteors, i, i+1)
			break
		}
	}
	// The miss (if any) came after the hit, so the index is still valid.
	if hit != -1 {
		g.meteors = slices.Delete(g.meteors, hit, hit+1)
	}
}

// destroyMeteor scores a typed word.
func (g *Game) destroyMeteor(m *object.Meteor) {
	pal := g.cfg.Palette

	g.stats.AddScore(config.ScoreHit)
	if g.stats.IncrementStreak() {
		g.stats.Heal(config.StreakBonusHeal)
		g.Spawn(object.NewFloatingText(
			float64(g.cfg.Width/2), float64(g.cfg.Height/2),
			fmt.Sprintf("STREAK %dX! +%d HP", config.StreakBonusStep, config.StreakBonusHeal), pal.NeonGreen))
		g.shake.Trigger(config.ShakeBonus)
		g.sound.Play(CueStreakBonus)
	}

	object.SpawnBurst(m.X, m.Y, pal.NeonCyan, object.ParticleBurstSize, g.rng, g)
	g.Spawn(object.NewFloatingText(m.X, m.Y, fmt.Sprintf("+%d", config.ScoreHit), pal.NeonCyan))
	g.input = ""
	g.shake.Trigger(config.ShakeHit)
	g.sound.Play(CueHit)
}

// meteorImpact applies the damage of a word that reached the bottom.
func (g *Game) meteorImpact(m *object.Meteor) {
	pal := g.cfg.Palette
	height := float64(g.cfg.Height)

	g.stats.TakeDamage(config.MissDamage)
	g.Spawn(object.NewFloatingText(m.X, height-50, fmt.Sprintf("-%d HP", config.MissDamage), pal.Error))
	g.Spawn(object.NewFloatingText(m.X, height-80, "Streak Lost!", pal.Error))
	object.SpawnBurst(m.X, height, pal.Error, object.ParticleBurstSize, g.rng, g)
	g.shake.Trigger(config.ShakeMiss)
	g.damageFlash = true
	g.sound.Play(CueDamage)
}

// drawPlayingScreen draws entities, the input bar and the HUD.
func (g *Game) drawPlayingScreen(ctx object.DrawContext) {
	s := ctx.Surface
	pal := ctx.Palette
	width := float64(g.cfg.Width)
	height := float64(g.cfg.Height)

	if g.damageFlash {
		s.FillRect(physics.Rect{W: width, H: height}, draw.WithAlpha(pal.Error, config.DamageFlashAlpha))
	}

	object.DrawAll(ctx, g.meteors)
	object.DrawAll(ctx, g.particles)
	object.DrawAll(ctx, g.floaters)

	s.FillRect(physics.Rect{X: 0, Y: height - inputBarHeight, W: width, H: inputBarHeight}, pal.Grid)

	inputX := draw.CenterText(s, g.input, inputFontSize, width/2)
	s.DrawText(g.input, inputX+ctx.Offset.X, height-45+ctx.Offset.Y, inputFontSize, pal.NeonMagenta)
	s.DrawText(panicTip, draw.CenterText(s, panicTip, tipFontSize, width/2), height-15, tipFontSize, pal.Muted)

	g.drawHealthBar(s, pal)
	g.drawHUD(s, pal, width)

	if g.popupVisible {
		const popup = "LEVEL UP!"
		s.DrawText(popup, draw.CenterText(s, popup, popupFontSize, width/2), height/2-100, popupFontSize, pal.NeonGreen)
	}
}

func (g *Game) drawHealthBar(s draw.Surface, pal config.Palette) {
	barWidth := float64(2 * g.stats.MaxHealth())
	frame := physics.Rect{X: healthBarX, Y: healthBarY, W: barWidth, H: healthBarH}
	s.FillRect(frame, pal.HealthBack)
	s.FillRect(physics.Rect{X: healthBarX, Y: healthBarY, W: float64(2 * g.stats.Health()), H: healthBarH}, pal.Error)
	s.StrokeRect(frame, pal.HealthFrame)
}

func (g *Game) drawHUD(s draw.Surface, pal config.Palette, width float64) {
	x := width - hudColumnWidth
	streakColor := pal.Muted
	if g.stats.Streak() > 0 {
		streakColor = pal.NeonYellow
	}
	s.DrawText(fmt.Sprintf("SCORE: %d", g.stats.Score()), x, 20, hudFontSize, pal.TextMain)
	s.DrawText(fmt.Sprintf("LEVEL: %d", g.level.Level()), x, 50, hudFontSize, pal.NeonGreen)
	s.DrawText(fmt.Sprintf("STREAK: %d", g.stats.Streak()), x, 80, hudFontSize, streakColor)
}
