//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// Binding indirection so lifetime tests can substitute counting fakes.
var (
	seatRefFn   = libinput.SeatRef
	seatUnrefFn = libinput.SeatUnref
)

// Seat is the session-level grouping of input devices. Devices on the same
// physical seat share a pointer and keyboard focus.
//
// A Seat holds one reference on the underlying native object; Clone takes an
// additional one and Close releases the wrapper's.
type Seat struct {
	ptr libinput.Seat
}

// wrapSeatBorrowed wraps a raw handle owned by someone else (a device),
// taking a new reference for the wrapper.
func wrapSeatBorrowed(raw libinput.Seat) *Seat {
	if raw == nil {
		return nil
	}
	return &Seat{ptr: seatRefFn(raw)}
}

// Raw returns the underlying opaque handle for interop with the low-level
// libinput package. The handle is only valid while the Seat is open.
func (s *Seat) Raw() libinput.Seat {
	if s == nil {
		return nil
	}
	return s.ptr
}

// Clone returns a new Seat sharing the same underlying object, taking an
// additional reference on it.
func (s *Seat) Clone() *Seat {
	if s == nil || s.ptr == nil {
		return nil
	}
	return &Seat{ptr: seatRefFn(s.ptr)}
}

// Close releases the wrapper's reference. Idempotent; accessors on a closed
// Seat return zero values.
func (s *Seat) Close() error {
	if s == nil || s.ptr == nil {
		return nil
	}
	seatUnrefFn(s.ptr)
	s.ptr = nil
	return nil
}

// PhysicalName returns the physical seat name, e.g. "seat0".
func (s *Seat) PhysicalName() string {
	if s == nil {
		return ""
	}
	return libinput.SeatGetPhysicalName(s.ptr)
}

// LogicalName returns the logical seat name, e.g. "default".
func (s *Seat) LogicalName() string {
	if s == nil {
		return ""
	}
	return libinput.SeatGetLogicalName(s.ptr)
}
