//go:build (linux || freebsd) && (amd64 || arm64)

package libinput

import "unsafe"

// Device and seat function bindings
var (
	liDeviceRef           func(dev unsafe.Pointer) unsafe.Pointer
	liDeviceUnref         func(dev unsafe.Pointer) unsafe.Pointer
	liDeviceGetName       func(dev unsafe.Pointer) string
	liDeviceGetSysname    func(dev unsafe.Pointer) string
	liDeviceGetIDVendor   func(dev unsafe.Pointer) uint32
	liDeviceGetIDProduct  func(dev unsafe.Pointer) uint32
	liDeviceHasCapability func(dev unsafe.Pointer, cap uint32) int32
	liDeviceGetSeat       func(dev unsafe.Pointer) unsafe.Pointer

	liSeatRef             func(seat unsafe.Pointer) unsafe.Pointer
	liSeatUnref           func(seat unsafe.Pointer) unsafe.Pointer
	liSeatGetPhysicalName func(seat unsafe.Pointer) string
	liSeatGetLogicalName  func(seat unsafe.Pointer) string
)

func registerDeviceBindings(lib uintptr) {
	register(&liDeviceRef, lib, "libinput_device_ref")
	register(&liDeviceUnref, lib, "libinput_device_unref")
	register(&liDeviceGetName, lib, "libinput_device_get_name")
	register(&liDeviceGetSysname, lib, "libinput_device_get_sysname")
	register(&liDeviceGetIDVendor, lib, "libinput_device_get_id_vendor")
	register(&liDeviceGetIDProduct, lib, "libinput_device_get_id_product")
	register(&liDeviceHasCapability, lib, "libinput_device_has_capability")
	register(&liDeviceGetSeat, lib, "libinput_device_get_seat")

	register(&liSeatRef, lib, "libinput_seat_ref")
	register(&liSeatUnref, lib, "libinput_seat_unref")
	register(&liSeatGetPhysicalName, lib, "libinput_seat_get_physical_name")
	register(&liSeatGetLogicalName, lib, "libinput_seat_get_logical_name")
}

// DeviceRef increments a device's reference count.
func DeviceRef(dev Device) Device {
	if dev == nil || liDeviceRef == nil {
		return nil
	}
	return liDeviceRef(dev)
}

// DeviceUnref decrements a device's reference count. The device is destroyed
// when the count reaches zero.
func DeviceUnref(dev Device) {
	if dev == nil || liDeviceUnref == nil {
		return
	}
	liDeviceUnref(dev)
}

// DeviceGetName returns the human-readable device name, or "" on a nil handle.
func DeviceGetName(dev Device) string {
	if dev == nil || liDeviceGetName == nil {
		return ""
	}
	return liDeviceGetName(dev)
}

// DeviceGetSysname returns the kernel sysname (e.g. "event3").
func DeviceGetSysname(dev Device) string {
	if dev == nil || liDeviceGetSysname == nil {
		return ""
	}
	return liDeviceGetSysname(dev)
}

// DeviceGetIDVendor returns the USB vendor ID, or 0 if unavailable.
func DeviceGetIDVendor(dev Device) uint32 {
	if dev == nil || liDeviceGetIDVendor == nil {
		return 0
	}
	return liDeviceGetIDVendor(dev)
}

// DeviceGetIDProduct returns the USB product ID, or 0 if unavailable.
func DeviceGetIDProduct(dev Device) uint32 {
	if dev == nil || liDeviceGetIDProduct == nil {
		return 0
	}
	return liDeviceGetIDProduct(dev)
}

// DeviceHasCapability reports whether the device advertises the given
// capability (a DeviceCap* value).
func DeviceHasCapability(dev Device, cap uint32) bool {
	if dev == nil || liDeviceHasCapability == nil {
		return false
	}
	return liDeviceHasCapability(dev, cap) != 0
}

// DeviceGetSeat returns the seat the device is assigned to. The returned seat
// is owned by the device; callers who keep it must take a reference with
// SeatRef.
func DeviceGetSeat(dev Device) Seat {
	if dev == nil || liDeviceGetSeat == nil {
		return nil
	}
	return liDeviceGetSeat(dev)
}

// SeatRef increments a seat's reference count.
func SeatRef(seat Seat) Seat {
	if seat == nil || liSeatRef == nil {
		return nil
	}
	return liSeatRef(seat)
}

// SeatUnref decrements a seat's reference count.
func SeatUnref(seat Seat) {
	if seat == nil || liSeatUnref == nil {
		return
	}
	liSeatUnref(seat)
}

// SeatGetPhysicalName returns the physical seat name (e.g. "seat0").
func SeatGetPhysicalName(seat Seat) string {
	if seat == nil || liSeatGetPhysicalName == nil {
		return ""
	}
	return liSeatGetPhysicalName(seat)
}

// SeatGetLogicalName returns the logical seat name (e.g. "default").
func SeatGetLogicalName(seat Seat) string {
	if seat == nil || liSeatGetLogicalName == nil {
		return ""
	}
	return liSeatGetLogicalName(seat)
}
