package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/input"
	"github.com/tomz197/cybertyper/internal/loop/config"
)

// Client runs one game on a terminal: it decodes keyboard and mouse input
// from r, renders frames to w and paces the loop at the configured FPS.
type Client struct {
	game         *Game
	canvas       *draw.Canvas
	frames       *draw.FrameWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Store        HighscoreStore
	Sound        Sound
	Logger       *log.Logger
	Config       *config.Config // Nil means config.Default()
}

// NewClient creates a client reading input from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := []Option{WithLogger(logger), WithStore(opts.Store)}
	if opts.Sound != nil {
		gameOpts = append(gameOpts, WithSound(opts.Sound))
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(cfg.Width), float64(cfg.Height))
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		game:         New(cfg, gameOpts...),
		canvas:       canvas,
		frames:       draw.NewFrameWriter(w),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
}

// Game returns the game driven by this client.
func (c *Client) Game() *Game {
	return c.game
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	draw.ClearScreen(c.writer)
	defer func() {
		draw.DisableMouse(c.writer)
		draw.ClearScreen(c.writer)
		draw.ShowCursor(c.writer)
	}()

	ticker := time.NewTicker(c.game.Config().FrameTime())
	defer ticker.Stop()

	// Leaving mid-game still keeps a new best score.
	defer c.game.Close()

	for c.game.Running() {
		c.updateScreen()
		c.game.Frame(c.readEvents())

		if err := c.drawFrame(); err != nil {
			return err
		}
		if !c.game.Running() {
			break
		}

		select {
		case <-ctx.Done():
			c.logger.Debug("client stopped", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// readEvents drains pending input and maps mouse cells to logical pixels.
func (c *Client) readEvents() []input.Event {
	events := input.ReadEvents(c.inputStream)
	for i, ev := range events {
		if ev.IsMouse() {
			events[i].X, events[i].Y = c.canvas.TerminalToLogical(int(ev.X), int(ev.Y))
		}
	}
	return events
}

// updateScreen handles terminal resize.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
}

// drawFrame draws the current frame into the canvas and flushes it.
func (c *Client) drawFrame() error {
	c.game.Draw(c.canvas)

	if err := c.canvas.Render(c.frames); err != nil {
		return err
	}
	// Draw border when terminal exceeds max render resolution
	if err := c.canvas.RenderBorder(c.frames); err != nil {
		return err
	}
	return c.frames.Flush()
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
