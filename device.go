//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// DeviceCapability describes a class of events a device can produce.
type DeviceCapability int

// Device capabilities. CapabilityUnknown is returned for codes this package
// does not recognize.
const (
	CapabilityUnknown DeviceCapability = iota
	CapabilityKeyboard
	CapabilityPointer
	CapabilityTouch
	CapabilityTabletTool
	CapabilityTabletPad
	CapabilityGesture
	CapabilitySwitch
)

// String returns the capability name.
func (c DeviceCapability) String() string {
	switch c {
	case CapabilityKeyboard:
		return "keyboard"
	case CapabilityPointer:
		return "pointer"
	case CapabilityTouch:
		return "touch"
	case CapabilityTabletTool:
		return "tablet-tool"
	case CapabilityTabletPad:
		return "tablet-pad"
	case CapabilityGesture:
		return "gesture"
	case CapabilitySwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// capabilityCodes maps capabilities to their native codes.
var capabilityCodes = map[DeviceCapability]uint32{
	CapabilityKeyboard:   libinput.DeviceCapKeyboard,
	CapabilityPointer:    libinput.DeviceCapPointer,
	CapabilityTouch:      libinput.DeviceCapTouch,
	CapabilityTabletTool: libinput.DeviceCapTabletTool,
	CapabilityTabletPad:  libinput.DeviceCapTabletPad,
	CapabilityGesture:    libinput.DeviceCapGesture,
	CapabilitySwitch:     libinput.DeviceCapSwitch,
}

// AllCapabilities lists every capability this package knows, in native code
// order. Useful for enumerating what a device offers.
func AllCapabilities() []DeviceCapability {
	return []DeviceCapability{
		CapabilityKeyboard,
		CapabilityPointer,
		CapabilityTouch,
		CapabilityTabletTool,
		CapabilityTabletPad,
		CapabilityGesture,
		CapabilitySwitch,
	}
}

// Binding indirection so lifetime tests can substitute counting fakes.
var (
	deviceRefFn   = libinput.DeviceRef
	deviceUnrefFn = libinput.DeviceUnref
)

// Device represents an input device known to libinput.
//
// A Device holds one reference on the underlying native object; Clone takes
// an additional one and Close releases the wrapper's. Devices are derived
// from events (Event.Device) or from Context.AddDevice; they cannot be
// constructed from nothing.
type Device struct {
	ptr libinput.Device
}

// wrapDevice wraps a raw handle, taking over one existing reference.
func wrapDevice(raw libinput.Device) *Device {
	if raw == nil {
		return nil
	}
	return &Device{ptr: raw}
}

// wrapDeviceBorrowed wraps a raw handle owned by someone else (an event or
// the context), taking a new reference for the wrapper.
func wrapDeviceBorrowed(raw libinput.Device) *Device {
	if raw == nil {
		return nil
	}
	return wrapDevice(deviceRefFn(raw))
}

// Raw returns the underlying opaque handle for interop with the low-level
// libinput package. The handle is only valid while the Device is open.
func (d *Device) Raw() libinput.Device {
	if d == nil {
		return nil
	}
	return d.ptr
}

// Clone returns a new Device sharing the same underlying object, taking an
// additional reference on it.
func (d *Device) Clone() *Device {
	if d == nil || d.ptr == nil {
		return nil
	}
	return wrapDevice(deviceRefFn(d.ptr))
}

// Close releases the wrapper's reference. Idempotent; accessors on a closed
// Device return zero values.
func (d *Device) Close() error {
	if d == nil || d.ptr == nil {
		return nil
	}
	deviceUnrefFn(d.ptr)
	d.ptr = nil
	return nil
}

// Name returns the human-readable device name, e.g.
// "Wacom Intuos Pro M Pen".
func (d *Device) Name() string {
	if d == nil {
		return ""
	}
	return libinput.DeviceGetName(d.ptr)
}

// Sysname returns the kernel sysname of the device, e.g. "event3".
func (d *Device) Sysname() string {
	if d == nil {
		return ""
	}
	return libinput.DeviceGetSysname(d.ptr)
}

// VendorID returns the USB vendor ID, or 0 if unavailable.
func (d *Device) VendorID() uint32 {
	if d == nil {
		return 0
	}
	return libinput.DeviceGetIDVendor(d.ptr)
}

// ProductID returns the USB product ID, or 0 if unavailable.
func (d *Device) ProductID() uint32 {
	if d == nil {
		return 0
	}
	return libinput.DeviceGetIDProduct(d.ptr)
}

// HasCapability reports whether the device advertises the given capability.
// CapabilityUnknown (and any future capability this package does not know)
// reports false.
func (d *Device) HasCapability(cap DeviceCapability) bool {
	if d == nil || d.ptr == nil {
		return false
	}
	code, ok := capabilityCodes[cap]
	if !ok {
		return false
	}
	return libinput.DeviceHasCapability(d.ptr, code)
}

// Capabilities returns the capabilities the device advertises.
func (d *Device) Capabilities() []DeviceCapability {
	var caps []DeviceCapability
	for _, c := range AllCapabilities() {
		if d.HasCapability(c) {
			caps = append(caps, c)
		}
	}
	return caps
}

// Seat returns the seat the device is assigned to. The returned Seat holds
// its own reference and must be closed by the caller.
func (d *Device) Seat() *Seat {
	if d == nil || d.ptr == nil {
		return nil
	}
	return wrapSeatBorrowed(libinput.DeviceGetSeat(d.ptr))
}
