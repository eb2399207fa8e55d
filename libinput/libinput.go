//go:build (linux || freebsd) && (amd64 || arm64)

// Package libinput provides low-level bindings to the libinput C library.
// It exposes one thin Go function per native symbol together with the raw
// enum values from libinput.h.
//
// Handles returned by this package are opaque native pointers. Reference
// counting and lifetime discipline live in the inputgo root package; most
// callers should use that instead.
package libinput

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/inputgo/internal/bindings"
	"github.com/obinnaokechukwu/inputgo/internal/handles"
)

// Context is an opaque libinput context pointer.
type Context = unsafe.Pointer

// Device is an opaque libinput device pointer.
type Device = unsafe.Pointer

// Seat is an opaque libinput seat pointer.
type Seat = unsafe.Pointer

// Event is an opaque libinput event pointer.
type Event = unsafe.Pointer

// TabletTool is an opaque libinput tablet tool pointer.
type TabletTool = unsafe.Pointer

// Udev is an opaque struct udev pointer from libudev.
type Udev = unsafe.Pointer

// RestrictedOpener opens and closes device nodes on behalf of libinput.
// Implementations are registered per context; libinput invokes them through
// the open_restricted/close_restricted callbacks whenever it needs a device
// file descriptor.
type RestrictedOpener interface {
	// OpenRestricted opens the device node at path with the given open(2)
	// flags and returns the file descriptor, or a negative errno on failure.
	OpenRestricted(path string, flags int) int
	// CloseRestricted closes a file descriptor previously returned by
	// OpenRestricted.
	CloseRestricted(fd int)
}

// Function bindings - registered when init() is called
var (
	udevNew   func() unsafe.Pointer
	udevUnref func(udev unsafe.Pointer) unsafe.Pointer

	liUdevCreateContext func(iface, userData, udev unsafe.Pointer) unsafe.Pointer
	liUdevAssignSeat    func(ctx unsafe.Pointer, seat string) int32
	liPathCreateContext func(iface, userData unsafe.Pointer) unsafe.Pointer
	liPathAddDevice     func(ctx unsafe.Pointer, path string) unsafe.Pointer
	liPathRemoveDevice  func(dev unsafe.Pointer)

	liRef            func(ctx unsafe.Pointer) unsafe.Pointer
	liUnref          func(ctx unsafe.Pointer) unsafe.Pointer
	liDispatch       func(ctx unsafe.Pointer) int32
	liGetFd          func(ctx unsafe.Pointer) int32
	liGetEvent       func(ctx unsafe.Pointer) unsafe.Pointer
	liSuspend        func(ctx unsafe.Pointer)
	liResume         func(ctx unsafe.Pointer) int32
	liLogSetPriority func(ctx unsafe.Pointer, priority int32)

	bindingsRegistered bool
)

// libinputInterface is the struct libinput_interface handed to context
// constructors: two C function pointers, open_restricted and
// close_restricted. It lives in a package-level variable so its address
// stays valid for the lifetime of every context.
var libinputInterface [2]uintptr

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	// Ensure the shared libraries are loaded.
	if err := bindings.Load(); err != nil {
		return // Will surface later as guarded zero values / ErrNotLoaded.
	}

	udev := bindings.LibUdev()
	purego.RegisterLibFunc(&udevNew, udev, "udev_new")
	purego.RegisterLibFunc(&udevUnref, udev, "udev_unref")

	lib := bindings.LibInput()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&liUdevCreateContext, lib, "libinput_udev_create_context")
	purego.RegisterLibFunc(&liUdevAssignSeat, lib, "libinput_udev_assign_seat")
	purego.RegisterLibFunc(&liPathCreateContext, lib, "libinput_path_create_context")
	purego.RegisterLibFunc(&liPathAddDevice, lib, "libinput_path_add_device")
	purego.RegisterLibFunc(&liPathRemoveDevice, lib, "libinput_path_remove_device")

	purego.RegisterLibFunc(&liRef, lib, "libinput_ref")
	purego.RegisterLibFunc(&liUnref, lib, "libinput_unref")
	purego.RegisterLibFunc(&liDispatch, lib, "libinput_dispatch")
	purego.RegisterLibFunc(&liGetFd, lib, "libinput_get_fd")
	purego.RegisterLibFunc(&liGetEvent, lib, "libinput_get_event")
	purego.RegisterLibFunc(&liSuspend, lib, "libinput_suspend")
	purego.RegisterLibFunc(&liResume, lib, "libinput_resume")
	purego.RegisterLibFunc(&liLogSetPriority, lib, "libinput_log_set_priority")

	libinputInterface[0] = purego.NewCallback(openRestrictedTrampoline)
	libinputInterface[1] = purego.NewCallback(closeRestrictedTrampoline)

	registerDeviceBindings(lib)
	registerToolBindings(lib)
	registerEventBindings(lib)

	bindingsRegistered = true
}

// register registers a binding for a symbol that every supported libinput
// release carries. Missing symbols panic, which is the right failure mode
// for a broken installation.
func register(fptr any, lib uintptr, name string) {
	purego.RegisterLibFunc(fptr, lib, name)
}

// registerOptional registers a binding only if the symbol exists in the
// loaded library. Symbols added in newer libinput releases go through this
// so that older installations still load.
func registerOptional(fptr any, lib uintptr, name string) {
	if _, err := purego.Dlsym(lib, name); err != nil {
		return
	}
	purego.RegisterLibFunc(fptr, lib, name)
}

// openRestrictedTrampoline is invoked by libinput whenever it needs a device
// node opened. user_data carries the handle of the registered
// RestrictedOpener. Signature: int (*)(const char *path, int flags, void *user_data)
func openRestrictedTrampoline(path *byte, flags int32, userData unsafe.Pointer) int32 {
	opener, _ := handles.Lookup(uintptr(userData)).(RestrictedOpener)
	if opener == nil {
		return -1
	}
	return int32(opener.OpenRestricted(goString(path), int(flags)))
}

// closeRestrictedTrampoline mirrors openRestrictedTrampoline for close.
// Signature: void (*)(int fd, void *user_data)
func closeRestrictedTrampoline(fd int32, userData unsafe.Pointer) {
	opener, _ := handles.Lookup(uintptr(userData)).(RestrictedOpener)
	if opener == nil {
		return
	}
	opener.CloseRestricted(int(fd))
}

// goString converts a NUL-terminated C string to a Go string.
func goString(s *byte) string {
	if s == nil {
		return ""
	}
	ptr := unsafe.Pointer(s)
	for i := 0; ; i++ {
		if *(*byte)(unsafe.Pointer(uintptr(ptr) + uintptr(i))) == 0 {
			return string(unsafe.Slice(s, i))
		}
		if i > 4096 { // Safety limit
			return string(unsafe.Slice(s, i))
		}
	}
}

// RegisterOpener stores an opener for use as context user_data and returns
// the handle to pass to UdevCreateContext or PathCreateContext.
// The handle must be released with UnregisterOpener after the context is
// destroyed.
func RegisterOpener(opener RestrictedOpener) uintptr {
	return handles.Register(opener)
}

// UnregisterOpener releases a handle returned by RegisterOpener.
func UnregisterOpener(id uintptr) {
	handles.Unregister(id)
}

// UdevNew creates a new libudev context. Returns nil if libudev is not loaded.
func UdevNew() Udev {
	if udevNew == nil {
		return nil
	}
	return udevNew()
}

// UdevUnref drops a reference on a libudev context.
func UdevUnref(udev Udev) {
	if udev == nil || udevUnref == nil {
		return
	}
	udevUnref(udev)
}

// UdevCreateContext creates a libinput context from a udev handle. openerID
// is a handle from RegisterOpener and travels through user_data. Returns nil
// on failure or when libinput is not loaded.
func UdevCreateContext(openerID uintptr, udev Udev) Context {
	if liUdevCreateContext == nil || udev == nil {
		return nil
	}
	return liUdevCreateContext(unsafe.Pointer(&libinputInterface[0]), unsafe.Pointer(openerID), udev)
}

// UdevAssignSeat assigns a seat to a udev-backed context. Returns the native
// result: 0 on success, -1 on failure.
func UdevAssignSeat(ctx Context, seat string) int32 {
	if ctx == nil || liUdevAssignSeat == nil {
		return -1
	}
	return liUdevAssignSeat(ctx, seat)
}

// PathCreateContext creates a path-backend libinput context. openerID is a
// handle from RegisterOpener. Returns nil on failure.
func PathCreateContext(openerID uintptr) Context {
	if liPathCreateContext == nil {
		return nil
	}
	return liPathCreateContext(unsafe.Pointer(&libinputInterface[0]), unsafe.Pointer(openerID))
}

// PathAddDevice adds a device node to a path-backend context. The returned
// device is owned by the context; callers who keep it must take a reference
// with DeviceRef. Returns nil on failure.
func PathAddDevice(ctx Context, path string) Device {
	if ctx == nil || liPathAddDevice == nil {
		return nil
	}
	return liPathAddDevice(ctx, path)
}

// PathRemoveDevice removes a device added with PathAddDevice.
func PathRemoveDevice(dev Device) {
	if dev == nil || liPathRemoveDevice == nil {
		return
	}
	liPathRemoveDevice(dev)
}

// Ref increments a context's reference count.
func Ref(ctx Context) Context {
	if ctx == nil || liRef == nil {
		return nil
	}
	return liRef(ctx)
}

// Unref decrements a context's reference count. The context is destroyed
// when the count reaches zero.
func Unref(ctx Context) {
	if ctx == nil || liUnref == nil {
		return
	}
	liUnref(ctx)
}

// Dispatch reads events off the file descriptor and processes them
// internally. Returns 0 on success or a negative errno.
func Dispatch(ctx Context) int32 {
	if ctx == nil || liDispatch == nil {
		return -1
	}
	return liDispatch(ctx)
}

// GetFd returns the pollable file descriptor of the context, or -1.
func GetFd(ctx Context) int32 {
	if ctx == nil || liGetFd == nil {
		return -1
	}
	return liGetFd(ctx)
}

// GetEvent retrieves the next event from the internal queue, or nil when the
// queue is empty. The caller owns the event and must destroy it with
// EventDestroy.
func GetEvent(ctx Context) Event {
	if ctx == nil || liGetEvent == nil {
		return nil
	}
	return liGetEvent(ctx)
}

// Suspend closes all device file descriptors of the context.
func Suspend(ctx Context) {
	if ctx == nil || liSuspend == nil {
		return
	}
	liSuspend(ctx)
}

// Resume reopens the devices of a suspended context. Returns 0 on success,
// -1 on failure.
func Resume(ctx Context) int32 {
	if ctx == nil || liResume == nil {
		return -1
	}
	return liResume(ctx)
}

// LogSetPriority sets the minimum priority of messages libinput itself
// prints to its log handler.
func LogSetPriority(ctx Context, priority int32) {
	if ctx == nil || liLogSetPriority == nil {
		return
	}
	liLogSetPriority(ctx, priority)
}

// IsLoaded reports whether the native libraries loaded and bindings
// registered successfully.
func IsLoaded() bool {
	return bindingsRegistered
}

// HasToolSizeSupport reports whether the loaded libinput carries the 1.14
// tablet additions (totem tool type, tool size axis).
func HasToolSizeSupport() bool {
	return bindings.HasTabletV114()
}
