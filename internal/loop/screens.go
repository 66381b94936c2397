package loop

import (
	"fmt"

	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/input"
	"github.com/tomz197/cybertyper/internal/object"
	"github.com/tomz197/cybertyper/internal/physics"
)

const (
	titleFontSize    = 80
	subtitleFontSize = 40
	failureFontSize  = 100
	hintFontSize     = 20
)

const menuHint = "ENTER to start / ESC to quit"

// handleMenuEvent clicks buttons and handles the keyboard shortcuts.
func (g *Game) handleMenuEvent(ev input.Event) {
	switch ev.Kind {
	case input.EventMouseDown:
		for _, b := range g.buttons {
			b.CheckHover(ev.X, ev.Y)
			if b.HandleClick() {
				return
			}
		}
	case input.EventEnter:
		g.startGame()
	case input.EventEscape:
		g.Stop()
	}
}

// updateMenuState refreshes button hover from the last known pointer.
func (g *Game) updateMenuState() {
	for _, b := range g.buttons {
		b.CheckHover(g.mouse.X, g.mouse.Y)
	}
}

// handleGameOverEvent returns to the menu on Enter.
func (g *Game) handleGameOverEvent(ev input.Event) {
	if ev.Kind == input.EventEnter {
		g.state = GameStateMenu
		g.logger.Debug("back to menu")
	}
}

// drawMenuScreen draws the title, high score and buttons.
func (g *Game) drawMenuScreen(ctx object.DrawContext) {
	s := ctx.Surface
	pal := ctx.Palette
	cx := float64(g.cfg.Width) / 2

	const title = "CYBER TYPER"
	s.DrawText(title, draw.CenterText(s, title, titleFontSize, cx), 150, titleFontSize, pal.NeonMagenta)

	hs := fmt.Sprintf("High Score: %d", g.stats.Highscore())
	s.DrawText(hs, draw.CenterText(s, hs, subtitleFontSize, cx), 230, subtitleFontSize, pal.NeonCyan)

	for _, b := range g.buttons {
		b.Draw(ctx)
	}

	s.DrawText(menuHint, draw.CenterText(s, menuHint, hintFontSize, cx), float64(g.cfg.Height)-40, hintFontSize, pal.Muted)
}

// drawGameOverScreen dims the board and shows the final score.
func (g *Game) drawGameOverScreen(ctx object.DrawContext) {
	s := ctx.Surface
	pal := ctx.Palette
	cx := float64(g.cfg.Width) / 2

	s.FillRect(physics.Rect{W: float64(g.cfg.Width), H: float64(g.cfg.Height)}, pal.Overlay)

	const failure = "SYSTEM FAILURE"
	s.DrawText(failure, draw.CenterText(s, failure, failureFontSize, cx)+ctx.Offset.X, 250+ctx.Offset.Y, failureFontSize, pal.Error)

	score := fmt.Sprintf("Final Score: %d", g.stats.Score())
	s.DrawText(score, draw.CenterText(s, score, subtitleFontSize, cx), 350, subtitleFontSize, pal.TextMain)

	const prompt = "Press ENTER to Main Menu"
	s.DrawText(prompt, draw.CenterText(s, prompt, subtitleFontSize, cx), 450, subtitleFontSize, pal.NeonCyan)
}
