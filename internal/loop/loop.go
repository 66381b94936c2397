// Package loop provides the main game loop and state management.
package loop

import (
	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/input"
	"github.com/tomz197/cybertyper/internal/object"
)

// Frame runs one full tick: drains the queued events in arrival order, then
// updates. Drawing is left to the caller so front-ends control presentation.
func (g *Game) Frame(events []input.Event) {
	for _, ev := range events {
		g.HandleEvent(ev)
	}
	g.Update()
}

// HandleEvent applies a single input event to the current state.
func (g *Game) HandleEvent(ev input.Event) {
	if ev.Kind == input.EventQuit {
		g.Stop()
		return
	}
	if ev.IsMouse() {
		g.mouse = draw.Point{X: ev.X, Y: ev.Y}
	}

	switch g.state {
	case GameStateMenu:
		g.handleMenuEvent(ev)
	case GameStatePlaying:
		g.handlePlayingEvent(ev)
	case GameStateGameOver:
		g.handleGameOverEvent(ev)
	}
}

// Update advances the game by one frame.
func (g *Game) Update() {
	g.shake.Update()

	switch g.state {
	case GameStateMenu:
		g.updateMenuState()
	case GameStatePlaying:
		g.updatePlayingState()
	}
}

// Draw renders the current frame.
func (g *Game) Draw(s draw.Surface) {
	s.Fill(g.cfg.Palette.Background)

	ctx := object.DrawContext{
		Surface: s,
		Offset:  g.shake.Offset(),
		Palette: g.cfg.Palette,
	}

	switch g.state {
	case GameStateMenu:
		g.drawMenuScreen(ctx)
	case GameStatePlaying:
		g.drawPlayingScreen(ctx)
	case GameStateGameOver:
		g.drawGameOverScreen(ctx)
	}
}
