package input

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyDelete    = 0x7f
	keyEscape    = 0x1b
)

// SGR mouse button bits.
const (
	mouseButtonMask = 0x03
	mouseMotion     = 0x20
	mouseWheel      = 0x40
)

// Parser decodes a terminal byte stream. Incomplete escape sequences and
// partial UTF-8 runes at the end of a chunk are kept until the next Feed.
// A trailing lone ESC is held as well: it only becomes the Escape key when
// the next Feed brings no bytes, since it may be the start of a mouse report
// cut by a frame boundary.
type Parser struct {
	pending []byte
}

// Feed parses data (prefixed by any bytes left over from the previous call).
// An empty Feed releases a held ESC.
func (p *Parser) Feed(data []byte) []Event {
	if len(data) == 0 {
		return p.Flush()
	}
	buf := data
	if len(p.pending) > 0 {
		buf = append(p.pending, data...)
		p.pending = nil
	}

	var events []Event
	for i := 0; i < len(buf); {
		b := buf[i]
		switch {
		case b == keyEscape:
			n, ev, ok, complete := parseEscape(buf[i:])
			if !complete {
				p.pending = append([]byte(nil), buf[i:]...)
				return events
			}
			if ok {
				events = append(events, ev)
			}
			i += n
		case b == '\r':
			events = append(events, Key(EventEnter))
			i++
			if i < len(buf) && buf[i] == '\n' {
				i++
			}
		case b == '\n':
			events = append(events, Key(EventEnter))
			i++
		case b == keyBackspace || b == keyDelete:
			events = append(events, Key(EventBackspace))
			i++
		case b == keyCtrlC:
			events = append(events, Key(EventQuit))
			i++
		case b < 0x20:
			i++ // other control bytes are ignored
		default:
			if !utf8.FullRune(buf[i:]) {
				p.pending = append([]byte(nil), buf[i:]...)
				return events
			}
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError && unicode.IsPrint(r) {
				events = append(events, Char(r))
			}
			i += size
		}
	}
	return events
}

// Flush reports a held lone ESC as the Escape key. Other incomplete input
// stays pending.
func (p *Parser) Flush() []Event {
	if len(p.pending) == 1 && p.pending[0] == keyEscape {
		p.pending = nil
		return []Event{Key(EventEscape)}
	}
	return nil
}

// parseEscape decodes a sequence starting with ESC. It returns the number of
// bytes consumed, the event (if ok), and complete=false when the sequence is
// cut off and more bytes are needed.
func parseEscape(buf []byte) (n int, ev Event, ok bool, complete bool) {
	if len(buf) == 1 {
		return 0, Event{}, false, false
	}
	switch buf[1] {
	case '[':
		// CSI: parameters and intermediates, then a final byte in 0x40..0x7e.
		for j := 2; j < len(buf); j++ {
			c := buf[j]
			if c >= 0x40 && c <= 0x7e {
				ev, ok := parseCSI(buf[2:j], c)
				return j + 1, ev, ok, true
			}
		}
		return 0, Event{}, false, false
	case 'O':
		// SS3 (F1-F4, application cursor keys): ignore the key.
		if len(buf) < 3 {
			return 0, Event{}, false, false
		}
		return 3, Event{}, false, true
	case keyEscape:
		return 1, Key(EventEscape), true, true
	default:
		// ESC before a printable ASCII byte is Alt+key, which the game has
		// no use for. Before anything else the ESC was a key press of its own.
		if buf[1] >= 0x20 && buf[1] < keyDelete {
			return 2, Event{}, false, true
		}
		return 1, Key(EventEscape), true, true
	}
}

// parseCSI handles the CSI sequences the game cares about; currently only
// SGR mouse reports ("<b;x;y" with final 'M' or 'm').
func parseCSI(params []byte, final byte) (Event, bool) {
	if (final != 'M' && final != 'm') || len(params) == 0 || params[0] != '<' {
		return Event{}, false
	}
	fields := strings.Split(string(params[1:]), ";")
	if len(fields) != 3 {
		return Event{}, false
	}
	var nums [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Event{}, false
		}
		nums[i] = v
	}
	button, x, y := nums[0], float64(nums[1]), float64(nums[2])

	if button&mouseWheel != 0 {
		return Event{}, false
	}
	if final == 'm' || button&mouseMotion != 0 || button&mouseButtonMask != 0 {
		return Mouse(EventMouseMove, x, y), true
	}
	return Mouse(EventMouseDown, x, y), true
}
