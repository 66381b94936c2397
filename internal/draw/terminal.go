package draw

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI control sequences used by the terminal front-end.
const (
	seqClear       = "\033[0m\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
	seqMouseOn     = "\033[?1003h\033[?1006h" // any-motion tracking, SGR coordinates
	seqMouseOff    = "\033[?1006l\033[?1003l"
	frameChunkSize = 1400 // stays under a typical 1500-byte MTU
)

// FrameWriter collects one frame of terminal output and sends it to the
// underlying writer in MTU-sized writes, so an SSH channel never carries a
// half frame in one oversized packet.
type FrameWriter struct {
	frame bytes.Buffer
	out   io.Writer
}

var _ io.Writer = (*FrameWriter)(nil)

// NewFrameWriter creates a FrameWriter sending to out.
func NewFrameWriter(out io.Writer) *FrameWriter {
	return &FrameWriter{out: out}
}

// Write buffers p for the next Flush.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	return fw.frame.Write(p)
}

// Pending returns the number of buffered bytes.
func (fw *FrameWriter) Pending() int {
	return fw.frame.Len()
}

// Flush sends the buffered frame and empties the buffer. On error the rest
// of the frame is dropped.
func (fw *FrameWriter) Flush() error {
	defer fw.frame.Reset()
	for fw.frame.Len() > 0 {
		if _, err := fw.out.Write(fw.frame.Next(frameChunkSize)); err != nil {
			return err
		}
	}
	return nil
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc queries the process's own terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen resets attributes, homes the cursor and clears the screen.
func ClearScreen(w io.Writer) { io.WriteString(w, seqClear) }

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) { io.WriteString(w, seqHideCursor) }

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) { io.WriteString(w, seqShowCursor) }

// EnableMouse turns on mouse reporting for hover and clicks.
func EnableMouse(w io.Writer) { io.WriteString(w, seqMouseOn) }

// DisableMouse reverts EnableMouse.
func DisableMouse(w io.Writer) { io.WriteString(w, seqMouseOff) }
