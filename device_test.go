//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"testing"
	"unsafe"

	"github.com/obinnaokechukwu/inputgo/libinput"
)

// fakeRefcount backs a fake refcounted native object for device/seat
// lifetime tests.
type fakeRefcount struct {
	refs  int
	frees int
}

func (f *fakeRefcount) ref() {
	f.refs++
}

func (f *fakeRefcount) unref(t *testing.T) {
	t.Helper()
	if f.refs <= 0 {
		t.Error("unref below zero: double release")
		return
	}
	f.refs--
	if f.refs == 0 {
		f.frees++
	}
}

func TestDeviceLifetime(t *testing.T) {
	state := &fakeRefcount{refs: 1}
	handle := libinput.Device(unsafe.Pointer(state))

	origRef, origUnref := deviceRefFn, deviceUnrefFn
	deviceRefFn = func(dev libinput.Device) libinput.Device {
		state.ref()
		return dev
	}
	deviceUnrefFn = func(dev libinput.Device) {
		state.unref(t)
	}
	t.Cleanup(func() {
		deviceRefFn, deviceUnrefFn = origRef, origUnref
	})

	dev := wrapDevice(handle)
	clone := dev.Clone()
	if state.refs != 2 {
		t.Fatalf("refs after clone = %d, want 2", state.refs)
	}

	if err := dev.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if state.frees != 0 {
		t.Fatal("device freed while a clone is still open")
	}
	if err := clone.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if state.refs != 0 || state.frees != 1 {
		t.Errorf("after all releases: refs=%d frees=%d, want 0 and 1", state.refs, state.frees)
	}

	// Borrowed wrapping takes its own reference.
	state.refs = 1
	state.frees = 0
	borrowed := wrapDeviceBorrowed(handle)
	if state.refs != 2 {
		t.Fatalf("refs after borrowed wrap = %d, want 2", state.refs)
	}
	if err := borrowed.Close(); err != nil {
		t.Fatalf("Close borrowed: %v", err)
	}
	if state.refs != 1 {
		t.Errorf("borrowed wrapper should release only its own reference, refs=%d", state.refs)
	}
}

func TestSeatLifetime(t *testing.T) {
	state := &fakeRefcount{refs: 1}
	handle := libinput.Seat(unsafe.Pointer(state))

	origRef, origUnref := seatRefFn, seatUnrefFn
	seatRefFn = func(seat libinput.Seat) libinput.Seat {
		state.ref()
		return seat
	}
	seatUnrefFn = func(seat libinput.Seat) {
		state.unref(t)
	}
	t.Cleanup(func() {
		seatRefFn, seatUnrefFn = origRef, origUnref
	})

	seat := wrapSeatBorrowed(handle)
	if state.refs != 2 {
		t.Fatalf("refs after borrowed wrap = %d, want 2", state.refs)
	}

	clone := seat.Clone()
	if state.refs != 3 {
		t.Fatalf("refs after clone = %d, want 3", state.refs)
	}

	if err := seat.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := clone.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if state.refs != 1 || state.frees != 0 {
		t.Errorf("wrappers must not release the native layer's own reference: refs=%d frees=%d", state.refs, state.frees)
	}
}

func TestCapabilityCodesCoverAllCapabilities(t *testing.T) {
	for _, c := range AllCapabilities() {
		if _, ok := capabilityCodes[c]; !ok {
			t.Errorf("capability %v has no native code mapping", c)
		}
		if c.String() == "unknown" {
			t.Errorf("capability %v has no name", int(c))
		}
	}

	if CapabilityUnknown.String() != "unknown" {
		t.Errorf("CapabilityUnknown.String() = %q", CapabilityUnknown.String())
	}
	if _, ok := capabilityCodes[CapabilityUnknown]; ok {
		t.Error("CapabilityUnknown must not map to a native code")
	}
}

func TestNilDeviceIsInert(t *testing.T) {
	var dev *Device

	if dev.Name() != "" || dev.Sysname() != "" {
		t.Error("nil device should report empty names")
	}
	if dev.VendorID() != 0 || dev.ProductID() != 0 {
		t.Error("nil device should report zero IDs")
	}
	if dev.HasCapability(CapabilityTabletTool) {
		t.Error("nil device should report no capabilities")
	}
	if caps := dev.Capabilities(); len(caps) != 0 {
		t.Errorf("nil device Capabilities = %v, want empty", caps)
	}
	if dev.Seat() != nil {
		t.Error("nil device Seat should return nil")
	}
	if err := dev.Close(); err != nil {
		t.Errorf("nil device Close: %v", err)
	}
}
