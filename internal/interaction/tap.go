package interaction

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GestureState is the lifecycle of a tap gesture.
type GestureState uint8

const (
	StatePossible GestureState = iota
	StateBegan
	StateChanged
	StateEnded
	StateCancelled
)

func (s GestureState) String() string {
	switch s {
	case StatePossible:
		return "possible"
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TapEvent is a screen-space point plus the recognizer state it was reported in.
type TapEvent struct {
	Point rl.Vector2
	State GestureState
}

// DefaultSlop is how far in pixels the pointer may travel before a press stops being a tap.
const DefaultSlop = 10

// TapRecognizer turns per-frame pointer samples into tap events. A press that moves further
// than Slop from where it started is cancelled, so drags never produce taps.
type TapRecognizer struct {
	Slop float32

	down   bool
	failed bool
	start  rl.Vector2
}

// NewTapRecognizer returns a recognizer with DefaultSlop.
func NewTapRecognizer() *TapRecognizer {
	return &TapRecognizer{Slop: DefaultSlop}
}

// Sample feeds the pointer state for one frame. ok is false when nothing happened this frame.
func (r *TapRecognizer) Sample(pressed bool, pos rl.Vector2) (ev TapEvent, ok bool) {
	switch {
	case pressed && !r.down:
		r.down = true
		r.failed = false
		r.start = pos
		return TapEvent{Point: pos, State: StateBegan}, true
	case pressed && r.down:
		if r.failed {
			return TapEvent{}, false
		}
		if rl.Vector2Distance(r.start, pos) > r.Slop {
			r.failed = true
			return TapEvent{Point: pos, State: StateCancelled}, true
		}
		return TapEvent{Point: pos, State: StateChanged}, true
	case !pressed && r.down:
		r.down = false
		if r.failed {
			return TapEvent{}, false
		}
		return TapEvent{Point: pos, State: StateEnded}, true
	}
	return TapEvent{}, false
}
