//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestDefaultOpener(t *testing.T) {
	var opener fdOpener

	fd := opener.OpenRestricted("/dev/null", unix.O_RDONLY)
	if fd < 0 {
		t.Fatalf("OpenRestricted(/dev/null) = %d, want a file descriptor", fd)
	}
	opener.CloseRestricted(fd)

	if fd := opener.OpenRestricted("/nonexistent/device", unix.O_RDONLY); fd != -int(unix.ENOENT) {
		t.Errorf("OpenRestricted(missing path) = %d, want %d", fd, -int(unix.ENOENT))
	}
}

func TestWithOpener(t *testing.T) {
	custom := fdOpener{}
	cfg := applyOptions([]ContextOption{WithOpener(custom)})
	if cfg.opener != DeviceOpener(custom) {
		t.Error("WithOpener did not install the custom opener")
	}

	cfg = applyOptions(nil)
	if cfg.opener == nil {
		t.Error("default opener should be installed when no option is given")
	}
}

func TestClosedContextIsInert(t *testing.T) {
	var ctx *Context

	if ctx.Fd() != -1 {
		t.Error("nil context Fd should be -1")
	}
	if err := ctx.Dispatch(); err != ErrClosed {
		t.Errorf("nil context Dispatch = %v, want ErrClosed", err)
	}
	if ctx.NextEvent() != nil {
		t.Error("nil context NextEvent should return nil")
	}
	if _, err := ctx.Wait(0); err != ErrClosed {
		t.Errorf("nil context Wait = %v, want ErrClosed", err)
	}
	if err := ctx.Resume(); err != ErrClosed {
		t.Errorf("nil context Resume = %v, want ErrClosed", err)
	}
	if _, err := ctx.AddDevice("/dev/input/event0"); err != ErrClosed {
		t.Errorf("nil context AddDevice = %v, want ErrClosed", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("nil context Close: %v", err)
	}
}

// Integration test - only runs when libinput is installed and the process
// can read /dev/input.
func TestPathContextRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping libinput integration test in short mode")
	}
	if err := Init(); err != nil {
		t.Skipf("libinput not available: %v", err)
	}

	ctx, err := NewPathContext()
	if err != nil {
		t.Skipf("cannot create path context: %v", err)
	}
	defer ctx.Close()

	if ctx.Fd() < 0 {
		t.Error("context fd should be valid")
	}
	if err := ctx.Dispatch(); err != nil {
		t.Errorf("Dispatch on empty context: %v", err)
	}
	if ev := ctx.NextEvent(); ev != nil {
		ev.Close()
	}

	clone := ctx.Clone()
	if clone == nil {
		t.Fatal("Clone returned nil")
	}
	if err := clone.Close(); err != nil {
		t.Errorf("Close clone: %v", err)
	}

	// Double close of the original must be a no-op.
	if err := ctx.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
