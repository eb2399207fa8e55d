//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// KeyState is the logical state of a key.
type KeyState int

// Key states.
const (
	KeyStateReleased KeyState = iota
	KeyStatePressed
)

// String returns "pressed" or "released".
func (s KeyState) String() string {
	if s == KeyStatePressed {
		return "pressed"
	}
	return "released"
}

// KeyboardEvent is the keyboard view of an Event. It borrows the event and
// is valid only until the event is closed.
type KeyboardEvent struct {
	event *Event
	ptr   libinput.KeyboardEvent
}

func (k *KeyboardEvent) live() libinput.KeyboardEvent {
	if k == nil || k.event == nil || k.event.ptr == nil {
		return nil
	}
	return k.ptr
}

// Key returns the key code (see linux/input-event-codes.h).
func (k *KeyboardEvent) Key() uint32 {
	return libinput.KeyboardGetKey(k.live())
}

// KeyState returns whether the key was pressed or released.
func (k *KeyboardEvent) KeyState() KeyState {
	if libinput.KeyboardGetKeyState(k.live()) == libinput.KeyStatePressed {
		return KeyStatePressed
	}
	return KeyStateReleased
}

// TimeUsec returns the event timestamp in microseconds.
func (k *KeyboardEvent) TimeUsec() uint64 {
	return libinput.KeyboardGetTimeUsec(k.live())
}
