// Package desktop runs the game in an Ebitengine window.
package desktop

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/cybertyper/internal/input"
	"github.com/tomz197/cybertyper/internal/loop"
)

// Key repeat timing in ticks, for held Backspace.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// App adapts a loop.Game to ebiten.Game.
type App struct {
	game    *loop.Game
	surface Surface
	chars   []rune
	mouseX  float64
	mouseY  float64
}

var _ ebiten.Game = (*App)(nil)

// NewApp wraps game.
func NewApp(game *loop.Game) *App {
	return &App{game: game, mouseX: -1, mouseY: -1}
}

// Run opens the window and blocks until the game stops or the window closes.
func (a *App) Run() error {
	cfg := a.game.Config()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(a)
	a.game.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (a *App) Update() error {
	a.game.Frame(a.events())
	if !a.game.Running() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.game.Draw(&a.surface)
}

func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return cfg.Width, cfg.Height
}

// events polls this tick's input. Ebitengine reports state rather than a
// stream, so the order within a tick is pointer, typed characters, then keys.
func (a *App) events() []input.Event {
	var evs []input.Event

	if ebiten.IsWindowBeingClosed() {
		return append(evs, input.Key(input.EventQuit))
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if x != a.mouseX || y != a.mouseY {
		a.mouseX, a.mouseY = x, y
		evs = append(evs, input.Mouse(input.EventMouseMove, x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, input.Mouse(input.EventMouseDown, x, y))
	}

	a.chars = ebiten.AppendInputChars(a.chars[:0])
	for _, r := range a.chars {
		evs = append(evs, input.Char(r))
	}

	if repeating(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		evs = append(evs, input.Key(input.EventBackspace))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		evs = append(evs, input.Key(input.EventEnter))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, input.Key(input.EventEscape))
	}
	return evs
}

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
