//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/obinnaokechukwu/inputgo/libinput"
)

// DeviceOpener opens and closes device nodes on behalf of libinput. The
// default opener calls open(2)/close(2) directly, which requires the process
// to have read access to /dev/input (typically root or the input group).
// Supply a custom opener with WithOpener to route the open through a
// privileged broker such as systemd-logind.
type DeviceOpener = libinput.RestrictedOpener

// fdOpener is the default DeviceOpener.
type fdOpener struct{}

func (fdOpener) OpenRestricted(path string, flags int) int {
	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		var errno unix.Errno
		if errors.As(err, &errno) {
			return -int(errno)
		}
		return -int(unix.EINVAL)
	}
	return fd
}

func (fdOpener) CloseRestricted(fd int) {
	_ = unix.Close(fd)
}

// LogPriority is the minimum severity of messages libinput itself reports.
type LogPriority int32

// Log priorities, lowest to highest.
const (
	LogPriorityDebug = LogPriority(libinput.LogPriorityDebug)
	LogPriorityInfo  = LogPriority(libinput.LogPriorityInfo)
	LogPriorityError = LogPriority(libinput.LogPriorityError)
)

// ContextOption configures context construction.
type ContextOption func(*contextConfig)

type contextConfig struct {
	opener DeviceOpener
}

// WithOpener replaces the default open(2)-based device opener.
func WithOpener(opener DeviceOpener) ContextOption {
	return func(c *contextConfig) {
		c.opener = opener
	}
}

// Context owns a libinput context: the udev or path backend, its devices,
// and the event queue. It is not safe for concurrent use; drive it from a
// single goroutine.
//
// A Context holds one reference on the native context. Clone takes an
// additional one; Close releases the wrapper's reference and, on the wrapper
// that created the context, the backing udev handle and opener registration.
type Context struct {
	ptr      libinput.Context
	udev     libinput.Udev
	openerID uintptr
	creator  bool
}

// NewUdevContext creates a context backed by the udev device enumeration and
// binds it to the given seat (usually "seat0"). Devices appear and disappear
// as udev reports them; the first events after creation are DeviceAdded for
// every existing device on the seat.
func NewUdevContext(seat string, opts ...ContextOption) (*Context, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	udev := libinput.UdevNew()
	if udev == nil {
		return nil, fmt.Errorf("%w: udev_new failed", ErrContextFailed)
	}

	openerID := libinput.RegisterOpener(cfg.opener)
	ptr := libinput.UdevCreateContext(openerID, udev)
	if ptr == nil {
		libinput.UnregisterOpener(openerID)
		libinput.UdevUnref(udev)
		return nil, ErrContextFailed
	}

	if rc := libinput.UdevAssignSeat(ptr, seat); rc != 0 {
		libinput.Unref(ptr)
		libinput.UnregisterOpener(openerID)
		libinput.UdevUnref(udev)
		return nil, fmt.Errorf("%w: %q", ErrAssignSeat, seat)
	}

	return &Context{ptr: ptr, udev: udev, openerID: openerID, creator: true}, nil
}

// NewPathContext creates a context with the path backend. Devices are added
// explicitly with AddDevice.
func NewPathContext(opts ...ContextOption) (*Context, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	openerID := libinput.RegisterOpener(cfg.opener)
	ptr := libinput.PathCreateContext(openerID)
	if ptr == nil {
		libinput.UnregisterOpener(openerID)
		return nil, ErrContextFailed
	}

	return &Context{ptr: ptr, openerID: openerID, creator: true}, nil
}

func applyOptions(opts []ContextOption) *contextConfig {
	cfg := &contextConfig{opener: fdOpener{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Raw returns the underlying opaque handle for interop with the low-level
// libinput package. The handle is only valid while the Context is open.
func (c *Context) Raw() libinput.Context {
	if c == nil {
		return nil
	}
	return c.ptr
}

// Clone returns a new Context wrapper sharing the same native context,
// taking an additional reference on it. The clone does not own the udev
// handle or the opener registration; closing it only drops its reference.
func (c *Context) Clone() *Context {
	if c == nil || c.ptr == nil {
		return nil
	}
	return &Context{ptr: libinput.Ref(c.ptr)}
}

// Close releases the wrapper's reference on the context. The creator wrapper
// also releases the udev handle and the opener registration. Idempotent.
func (c *Context) Close() error {
	if c == nil || c.ptr == nil {
		return nil
	}
	libinput.Unref(c.ptr)
	c.ptr = nil

	if c.creator {
		if c.udev != nil {
			libinput.UdevUnref(c.udev)
			c.udev = nil
		}
		if c.openerID != 0 {
			libinput.UnregisterOpener(c.openerID)
			c.openerID = 0
		}
	}
	return nil
}

// AddDevice adds a device node (e.g. "/dev/input/event3") to a path-backend
// context. The returned Device holds its own reference and must be closed by
// the caller.
func (c *Context) AddDevice(path string) (*Device, error) {
	if c == nil || c.ptr == nil {
		return nil, ErrClosed
	}
	raw := libinput.PathAddDevice(c.ptr, path)
	if raw == nil {
		return nil, fmt.Errorf("%w: %q", ErrAddDevice, path)
	}
	return wrapDeviceBorrowed(raw), nil
}

// RemoveDevice removes a device previously added with AddDevice. The Device
// wrapper stays valid (it holds its own reference) but produces no further
// events; close it as usual.
func (c *Context) RemoveDevice(dev *Device) {
	if c == nil || c.ptr == nil || dev == nil || dev.ptr == nil {
		return
	}
	libinput.PathRemoveDevice(dev.ptr)
}

// Fd returns the pollable file descriptor of the context. It becomes
// readable whenever events are pending; call Dispatch then drain NextEvent.
func (c *Context) Fd() int {
	if c == nil || c.ptr == nil {
		return -1
	}
	return int(libinput.GetFd(c.ptr))
}

// Dispatch reads pending data off the file descriptor and queues events.
// It must be called every time the context fd becomes readable.
func (c *Context) Dispatch() error {
	if c == nil || c.ptr == nil {
		return ErrClosed
	}
	if rc := libinput.Dispatch(c.ptr); rc < 0 {
		return fmt.Errorf("inputgo: dispatch: %w", unix.Errno(-rc))
	}
	return nil
}

// NextEvent returns the next queued event, or nil when the queue is empty.
// The caller owns the event and must close it.
func (c *Context) NextEvent() *Event {
	if c == nil || c.ptr == nil {
		return nil
	}
	return wrapEvent(libinput.GetEvent(c.ptr))
}

// Wait blocks until the context fd becomes readable or the timeout expires.
// A negative timeout blocks indefinitely. Returns true if events are ready.
// This is a convenience for simple read loops; applications with their own
// poll loop should use Fd directly.
func (c *Context) Wait(timeout time.Duration) (bool, error) {
	fd := c.Fd()
	if fd < 0 {
		return false, ErrClosed
	}

	tv := -1
	if timeout >= 0 {
		tv = int(timeout.Milliseconds())
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("inputgo: poll: %w", err)
		}
		return n > 0, nil
	}
}

// Suspend closes all device file descriptors of the context. Events already
// queued stay readable; no new events arrive until Resume.
func (c *Context) Suspend() {
	if c == nil || c.ptr == nil {
		return
	}
	libinput.Suspend(c.ptr)
}

// Resume reopens the devices of a suspended context.
func (c *Context) Resume() error {
	if c == nil || c.ptr == nil {
		return ErrClosed
	}
	if rc := libinput.Resume(c.ptr); rc != 0 {
		return ErrResume
	}
	return nil
}

// SetLogPriority sets the minimum severity of libinput's own log messages.
// This controls the native library's logging, not the package logger
// (see SetLogger).
func (c *Context) SetLogPriority(p LogPriority) {
	if c == nil || c.ptr == nil {
		return
	}
	libinput.LogSetPriority(c.ptr, int32(p))
}
