package snake

import "github.com/N3kTarinka/the-snake/internal/grid"

// Key is a directional key, independent of the front end that produced it.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// Direction returns the direction k stands for.
func (k Key) Direction() (grid.Direction, bool) {
	switch k {
	case KeyUp:
		return grid.Up, true
	case KeyDown:
		return grid.Down, true
	case KeyLeft:
		return grid.Left, true
	case KeyRight:
		return grid.Right, true
	default:
		return 0, false
	}
}

// MapKey turns k into a new heading. It refuses keys that would reverse the
// snake onto itself.
func MapKey(k Key, current grid.Direction) (grid.Direction, bool) {
	d, ok := k.Direction()
	if !ok || d == current.Opposite() {
		return current, false
	}
	return d, true
}

// EventKind tells a key press from a quit request.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventQuit
)

// Event is one item from an input poll.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyEvent wraps k as a key press.
func KeyEvent(k Key) Event { return Event{Kind: EventKey, Key: k} }

// QuitEvent asks the loop to stop.
func QuitEvent() Event { return Event{Kind: EventQuit} }
