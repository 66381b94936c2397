package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/tomz197/cybertyper/internal/physics"
)

// Box-drawing characters for outlines.
const (
	BoxHorizontal  = '─'
	BoxVertical    = '│'
	BoxTopLeft     = '┌'
	BoxTopRight    = '┐'
	BoxBottomLeft  = '└'
	BoxBottomRight = '┘'
)

// wideTail marks the cell covered by the right half of a double-width rune.
// Render emits nothing for it.
const wideTail rune = -1

// Cell is one terminal character cell.
type Cell struct {
	Ch rune // 0 renders as a space; wideTail renders as nothing
	FG color.NRGBA
	BG color.NRGBA
}

// Canvas is a terminal cell buffer implementing Surface.
// Game code draws in logical coordinates; the canvas scales them onto
// the terminal grid.
type Canvas struct {
	termWidth  int    // Terminal columns used for rendering
	termHeight int    // Terminal rows used for rendering
	cells      []Cell // Flat slice: [row * termWidth + col]

	// Scaling from logical to cell coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // termHeight / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte // Scratch buffer for allocation-free integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.cells = make([]Cell, termWidth*termHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(termHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the rendered column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the rendered row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// cellAt returns the cell at 0-based canvas coordinates.
func (c *Canvas) cellAt(col, row int) Cell {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return Cell{}
	}
	return c.cells[row*c.termWidth+col]
}

// logicalToTerminal converts logical coordinates to a 1-based terminal position (col, row).
func (c *Canvas) logicalToTerminal(x, y float64) (col, row int) {
	return int(math.Floor(x*c.scaleX)) + 1 + c.offsetCol, int(math.Floor(y*c.scaleY)) + 1 + c.offsetRow
}

// TerminalToLogical converts a 1-based terminal position to the logical
// coordinates of that cell's center.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	x = (float64(col-1-c.offsetCol) + 0.5) / c.scaleX
	y = (float64(row-1-c.offsetRow) + 0.5) / c.scaleY
	return x, y
}

// Fill implements Surface.
func (c *Canvas) Fill(bg color.NRGBA) {
	bg.A = 255
	for i := range c.cells {
		c.cells[i] = Cell{BG: bg, FG: bg}
	}
}

// cellSpan maps a logical interval onto an inclusive cell range.
// Every non-empty interval covers at least one cell.
func cellSpan(pos, size, scale float64) (int, int) {
	first := int(math.Floor(pos * scale))
	last := int(math.Ceil((pos+size)*scale)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// FillRect implements Surface.
func (c *Canvas) FillRect(r physics.Rect, col color.NRGBA) {
	if col.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	c0, c1 := cellSpan(r.X, r.W, c.scaleX)
	r0, r1 := cellSpan(r.Y, r.H, c.scaleY)
	for row := max(r0, 0); row <= min(r1, c.termHeight-1); row++ {
		for cc := max(c0, 0); cc <= min(c1, c.termWidth-1); cc++ {
			i := row*c.termWidth + cc
			cell := &c.cells[i]
			cell.BG = Blend(cell.BG, col)
			if col.A == 255 {
				c.unpairWide(i, cc)
				cell.Ch = 0
				cell.FG = cell.BG
			} else {
				cell.FG = Blend(cell.FG, col)
			}
		}
	}
}

// StrokeRect implements Surface.
func (c *Canvas) StrokeRect(r physics.Rect, col color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c0, c1 := cellSpan(r.X, r.W, c.scaleX)
	r0, r1 := cellSpan(r.Y, r.H, c.scaleY)
	for cc := c0; cc <= c1; cc++ {
		c.setRune(cc, r0, BoxHorizontal, col)
		c.setRune(cc, r1, BoxHorizontal, col)
	}
	for row := r0; row <= r1; row++ {
		c.setRune(c0, row, BoxVertical, col)
		c.setRune(c1, row, BoxVertical, col)
	}
	if r0 != r1 && c0 != c1 {
		c.setRune(c0, r0, BoxTopLeft, col)
		c.setRune(c1, r0, BoxTopRight, col)
		c.setRune(c0, r1, BoxBottomLeft, col)
		c.setRune(c1, r1, BoxBottomRight, col)
	}
}

// DrawText implements Surface. The text is placed on the row that holds the
// vertical middle of its line box, one cell per display column.
func (c *Canvas) DrawText(s string, x, y, size float64, col color.NRGBA) {
	if s == "" || col.A == 0 {
		return
	}
	cc := int(math.Floor(x * c.scaleX))
	row := int(math.Floor((y + size/2) * c.scaleY))
	for _, r := range s {
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			// A wide rune cut by either edge is dropped.
			if cc >= 0 && cc+1 < c.termWidth {
				c.setRune(cc, row, r, col)
				c.setRune(cc+1, row, wideTail, col)
			}
			cc += 2
		default:
			c.setRune(cc, row, r, col)
			cc++
		}
	}
}

// MeasureText implements Surface. The width is the display width in cells.
func (c *Canvas) MeasureText(s string, size float64) (w, h float64) {
	return float64(runewidth.StringWidth(s)) / c.scaleX, size
}

// setRune writes a rune at 0-based canvas coordinates; the foreground is
// blended over the cell background so translucent text fades out.
// Overwriting either half of a wide rune blanks the other half.
func (c *Canvas) setRune(col, row int, r rune, fg color.NRGBA) {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return
	}
	i := row*c.termWidth + col
	if !(r == wideTail && c.cells[i].Ch == wideTail) {
		c.unpairWide(i, col)
	}
	cell := &c.cells[i]
	cell.Ch = r
	cell.FG = Blend(cell.BG, fg)
}

// unpairWide blanks the other half of a wide rune occupying cell i (at
// column col) before that cell is overwritten.
func (c *Canvas) unpairWide(i, col int) {
	switch {
	case c.cells[i].Ch == wideTail:
		if col > 0 {
			c.cells[i-1].Ch = 0
		}
	case col+1 < c.termWidth && c.cells[i+1].Ch == wideTail:
		c.cells[i+1].Ch = 0
	}
}

// Render outputs every cell to the writer with 24-bit colour escapes,
// emitting a colour change only when it differs from the previous cell.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := 0; row < c.termHeight; row++ {
		c.moveTo(c.offsetCol+1, c.offsetRow+row+1)
		first := true
		var fg, bg color.NRGBA
		for col := 0; col < c.termWidth; col++ {
			cell := c.cells[row*c.termWidth+col]
			if first || cell.FG != fg || cell.BG != bg {
				c.writeColors(cell.FG, cell.BG)
				fg, bg = cell.FG, cell.BG
				first = false
			}
			switch cell.Ch {
			case wideTail:
			case 0:
				c.renderBuf.WriteByte(' ')
			default:
				c.renderBuf.WriteRune(cell.Ch)
			}
		}
		c.renderBuf.WriteString("\033[0m")
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat(string(BoxHorizontal), c.termWidth)
	if hasV {
		if hasH {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(left) + "H┌" + line + "┐")
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(left) + "H└" + line + "┘")
		} else {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + line)
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row < c.offsetRow+c.termHeight+1; row++ {
			buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(left) + "H│")
			buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(right) + "H│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

func (c *Canvas) moveTo(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeColors(fg, bg color.NRGBA) {
	c.renderBuf.WriteString("\033[38;2;")
	c.writeRGB(fg)
	c.renderBuf.WriteString(";48;2;")
	c.writeRGB(bg)
	c.renderBuf.WriteByte('m')
}

func (c *Canvas) writeRGB(col color.NRGBA) {
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.B), 10))
}

var _ Surface = (*Canvas)(nil)
