//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// TouchEvent is the touch view of an Event. It borrows the event and is
// valid only until the event is closed.
type TouchEvent struct {
	event *Event
	ptr   libinput.TouchEvent
}

func (t *TouchEvent) live() libinput.TouchEvent {
	if t == nil || t.event == nil || t.event.ptr == nil {
		return nil
	}
	return t.ptr
}

// Slot returns the hardware slot of the touch point, or -1 for devices that
// do not track slots.
func (t *TouchEvent) Slot() int {
	return int(libinput.TouchGetSlot(t.live()))
}

// SeatSlot returns the seat-wide unique slot of the touch point, or -1.
func (t *TouchEvent) SeatSlot() int {
	return int(libinput.TouchGetSeatSlot(t.live()))
}

// X returns the absolute x position in mm.
func (t *TouchEvent) X() float64 {
	return libinput.TouchGetX(t.live())
}

// Y returns the absolute y position in mm.
func (t *TouchEvent) Y() float64 {
	return libinput.TouchGetY(t.live())
}

// XTransformed returns the x position scaled to a screen of the given width.
func (t *TouchEvent) XTransformed(width uint32) float64 {
	return libinput.TouchGetXTransformed(t.live(), width)
}

// YTransformed returns the y position scaled to a screen of the given height.
func (t *TouchEvent) YTransformed(height uint32) float64 {
	return libinput.TouchGetYTransformed(t.live(), height)
}

// TimeUsec returns the event timestamp in microseconds.
func (t *TouchEvent) TimeUsec() uint64 {
	return libinput.TouchGetTimeUsec(t.live())
}
