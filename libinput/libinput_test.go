//go:build (linux || freebsd) && (amd64 || arm64)

package libinput

import (
	"testing"
	"unsafe"
)

func TestGoString(t *testing.T) {
	buf := []byte("seat0\x00trailing")
	if got := goString(&buf[0]); got != "seat0" {
		t.Errorf("goString = %q, want %q", got, "seat0")
	}

	empty := []byte{0}
	if got := goString(&empty[0]); got != "" {
		t.Errorf("goString of empty string = %q, want \"\"", got)
	}

	if got := goString(nil); got != "" {
		t.Errorf("goString(nil) = %q, want \"\"", got)
	}
}

// The thin wrappers must degrade to zero values on nil handles regardless of
// whether the native library loaded.
func TestNilHandleGuards(t *testing.T) {
	if got := TabletToolGetSerial(nil); got != 0 {
		t.Errorf("TabletToolGetSerial(nil) = %d, want 0", got)
	}
	if TabletToolHasPressure(nil) || TabletToolIsUnique(nil) || TabletToolHasButton(nil, 0x140) {
		t.Error("tool capability queries on nil handle should be false")
	}
	if got := EventGetType(nil); got != EventNone {
		t.Errorf("EventGetType(nil) = %d, want EventNone", got)
	}
	if DeviceGetName(nil) != "" || SeatGetPhysicalName(nil) != "" {
		t.Error("name queries on nil handle should be empty")
	}
	if got := Dispatch(nil); got != -1 {
		t.Errorf("Dispatch(nil) = %d, want -1", got)
	}
	if got := GetFd(nil); got != -1 {
		t.Errorf("GetFd(nil) = %d, want -1", got)
	}
	if GetEvent(nil) != nil || TabletToolRef(nil) != nil || DeviceRef(nil) != nil {
		t.Error("handle producers should return nil for nil input")
	}

	// Destructors must tolerate nil.
	EventDestroy(nil)
	TabletToolUnref(nil)
	DeviceUnref(nil)
	SeatUnref(nil)
	Unref(nil)
	UdevUnref(nil)
}

type nopOpener struct{}

func (nopOpener) OpenRestricted(string, int) int { return -1 }
func (nopOpener) CloseRestricted(int)            {}

func TestOpenerRegistry(t *testing.T) {
	id := RegisterOpener(nopOpener{})
	if id == 0 {
		t.Fatal("RegisterOpener returned zero handle")
	}
	UnregisterOpener(id)

	// The trampolines must fail soft when the opener is gone.
	path := []byte("/dev/input/event0\x00")
	if rc := openRestrictedTrampoline(&path[0], 0, unsafe.Pointer(id)); rc != -1 {
		t.Errorf("openRestrictedTrampoline with stale handle = %d, want -1", rc)
	}
	closeRestrictedTrampoline(3, unsafe.Pointer(id))
}

func TestNativeToolTypeCodes(t *testing.T) {
	// These values are ABI, fixed by libinput.h.
	codes := map[uint32]uint32{
		TabletToolTypePen:      1,
		TabletToolTypeEraser:   2,
		TabletToolTypeBrush:    3,
		TabletToolTypePencil:   4,
		TabletToolTypeAirbrush: 5,
		TabletToolTypeMouse:    6,
		TabletToolTypeLens:     7,
		TabletToolTypeTotem:    8,
	}
	for got, want := range codes {
		if got != want {
			t.Errorf("tool type code = %d, want %d", got, want)
		}
	}
}
