//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// TipState reports whether the tool tip touches the tablet surface.
type TipState int

// Tip states.
const (
	TipUp TipState = iota
	TipDown
)

// String returns "up" or "down".
func (s TipState) String() string {
	if s == TipDown {
		return "down"
	}
	return "up"
}

// ProximityState reports whether the tool is within the tablet's sensing
// range.
type ProximityState int

// Proximity states.
const (
	ProximityOut ProximityState = iota
	ProximityIn
)

// String returns "in" or "out".
func (s ProximityState) String() string {
	if s == ProximityIn {
		return "in"
	}
	return "out"
}

// TabletToolEvent is the tablet tool view of an Event. It borrows the event
// and is valid only until the event is closed. Axis values are only
// meaningful when the underlying tool supports them; see the Has* methods on
// Tool.
type TabletToolEvent struct {
	event *Event
	ptr   libinput.TabletToolEvent
}

func (e *TabletToolEvent) live() libinput.TabletToolEvent {
	if e == nil || e.event == nil || e.event.ptr == nil {
		return nil
	}
	return e.ptr
}

// Tool returns the tool that generated the event. The returned Tool holds
// its own reference and stays valid after the event is closed; callers must
// close it. For unique tools (Tool.IsUnique) this is how a tool is tracked
// across proximity sequences.
func (e *TabletToolEvent) Tool() *Tool {
	return wrapToolBorrowed(libinput.TabletToolEventGetTool(e.live()))
}

// X returns the absolute x position in mm.
func (e *TabletToolEvent) X() float64 {
	return libinput.TabletToolEventGetX(e.live())
}

// Y returns the absolute y position in mm.
func (e *TabletToolEvent) Y() float64 {
	return libinput.TabletToolEventGetY(e.live())
}

// Pressure returns the normalized tip pressure in [0, 1].
func (e *TabletToolEvent) Pressure() float64 {
	return libinput.TabletToolEventGetPressure(e.live())
}

// Distance returns the normalized hover distance in [0, 1].
func (e *TabletToolEvent) Distance() float64 {
	return libinput.TabletToolEventGetDistance(e.live())
}

// TiltX returns the tilt around the x axis in degrees.
func (e *TabletToolEvent) TiltX() float64 {
	return libinput.TabletToolEventGetTiltX(e.live())
}

// TiltY returns the tilt around the y axis in degrees.
func (e *TabletToolEvent) TiltY() float64 {
	return libinput.TabletToolEventGetTiltY(e.live())
}

// Rotation returns the z rotation of the tool in degrees, clockwise from the
// tool's logical neutral position.
func (e *TabletToolEvent) Rotation() float64 {
	return libinput.TabletToolEventGetRotation(e.live())
}

// SliderPosition returns the slider position in [-1, 1], 0 being neutral.
func (e *TabletToolEvent) SliderPosition() float64 {
	return libinput.TabletToolEventGetSliderPosition(e.live())
}

// WheelDelta returns the wheel movement in degrees.
func (e *TabletToolEvent) WheelDelta() float64 {
	return libinput.TabletToolEventGetWheelDelta(e.live())
}

// TipState returns whether the tip touches the surface (tip events only).
func (e *TabletToolEvent) TipState() TipState {
	if libinput.TabletToolEventGetTipState(e.live()) == libinput.TabletToolTipDown {
		return TipDown
	}
	return TipUp
}

// ProximityState returns whether the tool entered or left the sensing range
// (proximity events only).
func (e *TabletToolEvent) ProximityState() ProximityState {
	if libinput.TabletToolEventGetProximityState(e.live()) == libinput.TabletToolProximityIn {
		return ProximityIn
	}
	return ProximityOut
}

// Button returns the button code of a button event.
func (e *TabletToolEvent) Button() uint32 {
	return libinput.TabletToolEventGetButton(e.live())
}

// ButtonState returns whether the button was pressed or released.
func (e *TabletToolEvent) ButtonState() ButtonState {
	if libinput.TabletToolEventGetButtonState(e.live()) == libinput.ButtonStatePressed {
		return ButtonStatePressed
	}
	return ButtonStateReleased
}

// TimeUsec returns the event timestamp in microseconds.
func (e *TabletToolEvent) TimeUsec() uint64 {
	return libinput.TabletToolEventGetTimeUsec(e.live())
}
