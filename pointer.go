//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// ButtonState is the logical state of a button.
type ButtonState int

// Button states.
const (
	ButtonStateReleased ButtonState = iota
	ButtonStatePressed
)

// String returns "pressed" or "released".
func (s ButtonState) String() string {
	if s == ButtonStatePressed {
		return "pressed"
	}
	return "released"
}

// ScrollAxis selects the direction of a scroll movement.
type ScrollAxis int

// Scroll axes.
const (
	ScrollVertical ScrollAxis = iota
	ScrollHorizontal
)

// String returns the axis name.
func (a ScrollAxis) String() string {
	if a == ScrollHorizontal {
		return "horizontal"
	}
	return "vertical"
}

func (a ScrollAxis) native() uint32 {
	if a == ScrollHorizontal {
		return libinput.PointerAxisScrollHorizontal
	}
	return libinput.PointerAxisScrollVertical
}

// PointerEvent is the pointer view of an Event. It borrows the event and is
// valid only until the event is closed. Which accessors carry data depends
// on the event type: DX/DY for motion, AbsoluteX/Y for absolute motion,
// Button/ButtonState for button events, HasAxis/ScrollValue for scroll
// events.
type PointerEvent struct {
	event *Event
	ptr   libinput.PointerEvent
}

func (p *PointerEvent) live() libinput.PointerEvent {
	if p == nil || p.event == nil || p.event.ptr == nil {
		return nil
	}
	return p.ptr
}

// DX returns the accelerated relative x movement.
func (p *PointerEvent) DX() float64 {
	return libinput.PointerGetDX(p.live())
}

// DY returns the accelerated relative y movement.
func (p *PointerEvent) DY() float64 {
	return libinput.PointerGetDY(p.live())
}

// AbsoluteX returns the absolute x position in mm.
func (p *PointerEvent) AbsoluteX() float64 {
	return libinput.PointerGetAbsoluteX(p.live())
}

// AbsoluteY returns the absolute y position in mm.
func (p *PointerEvent) AbsoluteY() float64 {
	return libinput.PointerGetAbsoluteY(p.live())
}

// AbsoluteXTransformed returns the absolute x position scaled to a screen of
// the given width.
func (p *PointerEvent) AbsoluteXTransformed(width uint32) float64 {
	return libinput.PointerGetAbsoluteXTransformed(p.live(), width)
}

// AbsoluteYTransformed returns the absolute y position scaled to a screen of
// the given height.
func (p *PointerEvent) AbsoluteYTransformed(height uint32) float64 {
	return libinput.PointerGetAbsoluteYTransformed(p.live(), height)
}

// Button returns the button code of a button event (see
// linux/input-event-codes.h, e.g. BTN_LEFT).
func (p *PointerEvent) Button() uint32 {
	return libinput.PointerGetButton(p.live())
}

// ButtonState returns whether the button was pressed or released.
func (p *PointerEvent) ButtonState() ButtonState {
	if libinput.PointerGetButtonState(p.live()) == libinput.ButtonStatePressed {
		return ButtonStatePressed
	}
	return ButtonStateReleased
}

// HasAxis reports whether a scroll event carries movement on the given axis.
func (p *PointerEvent) HasAxis(axis ScrollAxis) bool {
	return libinput.PointerHasAxis(p.live(), axis.native())
}

// ScrollValue returns the scroll movement along an axis. Wheel events report
// degrees, finger and continuous events report "pixel" motion.
func (p *PointerEvent) ScrollValue(axis ScrollAxis) float64 {
	return libinput.PointerGetScrollValue(p.live(), axis.native())
}

// TimeUsec returns the event timestamp in microseconds.
func (p *PointerEvent) TimeUsec() uint64 {
	return libinput.PointerGetTimeUsec(p.live())
}
