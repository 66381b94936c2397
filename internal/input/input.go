// Package input turns raw terminal bytes into an ordered queue of game events.
package input

import (
	"bufio"
)

// EventKind identifies what an Event carries.
type EventKind int

const (
	EventRune      EventKind = iota // A printable character
	EventBackspace                  // Backspace or Delete
	EventEnter                      // Return
	EventEscape                     // Escape
	EventMouseMove                  // Pointer moved (X, Y set)
	EventMouseDown                  // Primary button pressed (X, Y set)
	EventQuit                       // Ctrl+C, window close or closed input
)

// Event is a single input occurrence. X and Y hold the pointer position for
// mouse events, in the coordinate space of whoever produced the event
// (terminal cells for the parser, logical pixels after mapping).
type Event struct {
	Kind EventKind
	Rune rune
	X, Y float64
}

// Key returns a key event without payload.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// Char returns a character event.
func Char(r rune) Event {
	return Event{Kind: EventRune, Rune: r}
}

// Mouse returns a pointer event at (x, y).
func Mouse(kind EventKind, x, y float64) Event {
	return Event{Kind: kind, X: x, Y: y}
}

// IsMouse reports whether the event carries a pointer position.
func (e Event) IsMouse() bool {
	return e.Kind == EventMouseMove || e.Kind == EventMouseDown
}

// readChunkSize bounds a single read from the terminal.
const readChunkSize = 1024

// Stream delivers input chunks via a channel.
type Stream struct {
	ch     chan []byte
	parser Parser
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends each read to the
// stream as one chunk, so a terminal sequence is never split by the reader.
// The channel is closed when r returns an error (including io.EOF).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan []byte, 64),
	}
	go func() {
		defer close(s.ch)
		for {
			buf := make([]byte, readChunkSize)
			n, err := r.Read(buf)
			if n > 0 {
				s.ch <- buf[:n]
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// ReadEvents drains all available input from the stream without blocking and
// returns the decoded events in arrival order. Once the underlying reader is
// exhausted a single EventQuit is reported.
func ReadEvents(s *Stream) []Event {
	if s.closed {
		return nil
	}

	var buf []byte
	open := true
drain:
	for {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				open = false
				break drain
			}
			buf = append(buf, chunk...)
		default:
			break drain
		}
	}

	events := s.parser.Feed(buf)
	if !open {
		s.closed = true
		events = append(events, s.parser.Flush()...)
		events = append(events, Key(EventQuit))
	}
	return events
}
