//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"testing"
	"unsafe"

	"github.com/obinnaokechukwu/inputgo/libinput"
)

// fakeToolState stands in for a native refcounted tool object so lifetime
// behavior can be verified without tablet hardware.
type fakeToolState struct {
	refs  int
	frees int

	serial   uint64
	toolID   uint64
	typeCode uint32

	pressure bool
	tilt     bool
	unique   bool
}

// installFakeTool swaps the tool binding functions for fakes backed by state
// and restores the real bindings when the test finishes. The fake starts
// with one reference, the one the native layer hands over at construction.
func installFakeTool(t *testing.T, state *fakeToolState) libinput.TabletTool {
	t.Helper()

	handle := libinput.TabletTool(unsafe.Pointer(state))
	lookup := func(tool libinput.TabletTool) *fakeToolState {
		if tool != handle {
			return nil
		}
		return state
	}

	origRef, origUnref := toolRefFn, toolUnrefFn
	origSerial, origID, origType := toolSerialFn, toolIDFn, toolTypeFn
	origPressure, origTilt, origUnique := toolHasPressureFn, toolHasTiltFn, toolIsUniqueFn

	toolRefFn = func(tool libinput.TabletTool) libinput.TabletTool {
		if s := lookup(tool); s != nil {
			s.refs++
			return tool
		}
		return nil
	}
	toolUnrefFn = func(tool libinput.TabletTool) {
		s := lookup(tool)
		if s == nil {
			t.Error("unref of unknown handle")
			return
		}
		if s.refs <= 0 {
			t.Error("unref below zero: double release")
			return
		}
		s.refs--
		if s.refs == 0 {
			s.frees++
		}
	}
	toolSerialFn = func(tool libinput.TabletTool) uint64 {
		if s := lookup(tool); s != nil {
			return s.serial
		}
		return 0
	}
	toolIDFn = func(tool libinput.TabletTool) uint64 {
		if s := lookup(tool); s != nil {
			return s.toolID
		}
		return 0
	}
	toolTypeFn = func(tool libinput.TabletTool) uint32 {
		if s := lookup(tool); s != nil {
			return s.typeCode
		}
		return 0
	}
	toolHasPressureFn = func(tool libinput.TabletTool) bool {
		if s := lookup(tool); s != nil {
			return s.pressure
		}
		return false
	}
	toolHasTiltFn = func(tool libinput.TabletTool) bool {
		if s := lookup(tool); s != nil {
			return s.tilt
		}
		return false
	}
	toolIsUniqueFn = func(tool libinput.TabletTool) bool {
		if s := lookup(tool); s != nil {
			return s.unique
		}
		return false
	}

	t.Cleanup(func() {
		toolRefFn, toolUnrefFn = origRef, origUnref
		toolSerialFn, toolIDFn, toolTypeFn = origSerial, origID, origType
		toolHasPressureFn, toolHasTiltFn, toolIsUniqueFn = origPressure, origTilt, origUnique
	})

	state.refs = 1
	return handle
}

func TestToolRefcountBalance(t *testing.T) {
	state := &fakeToolState{}
	tool := wrapTool(installFakeTool(t, state))

	const n = 5
	clones := make([]*Tool, 0, n)
	for i := 0; i < n; i++ {
		c := tool.Clone()
		if c == nil {
			t.Fatalf("Clone %d returned nil", i)
		}
		clones = append(clones, c)
	}

	if state.refs != n+1 {
		t.Fatalf("refs after %d clones = %d, want %d", n, state.refs, n+1)
	}

	// Release the clones first; the object must survive until the last
	// wrapper goes.
	for i, c := range clones {
		if err := c.Close(); err != nil {
			t.Fatalf("Close clone %d: %v", i, err)
		}
		if state.frees != 0 {
			t.Fatalf("object freed after closing clone %d with original still open", i)
		}
	}

	if err := tool.Close(); err != nil {
		t.Fatalf("Close original: %v", err)
	}
	if state.refs != 0 {
		t.Errorf("refs after all releases = %d, want 0", state.refs)
	}
	if state.frees != 1 {
		t.Errorf("frees = %d, want exactly 1", state.frees)
	}
}

func TestToolCloseIdempotent(t *testing.T) {
	state := &fakeToolState{}
	tool := wrapTool(installFakeTool(t, state))

	if err := tool.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := tool.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if state.refs != 0 || state.frees != 1 {
		t.Errorf("after double Close: refs=%d frees=%d, want 0 and 1", state.refs, state.frees)
	}

	// A closed wrapper degrades to zero values.
	if got := tool.Serial(); got != 0 {
		t.Errorf("Serial on closed tool = %d, want 0", got)
	}
	if tool.HasPressure() {
		t.Error("HasPressure on closed tool = true, want false")
	}
	if got := tool.Type(); got != ToolTypeUnknown {
		t.Errorf("Type on closed tool = %v, want unknown", got)
	}
	if tool.Clone() != nil {
		t.Error("Clone on closed tool should return nil")
	}
}

func TestToolAccessorsIdempotent(t *testing.T) {
	state := &fakeToolState{
		serial:   0xabcdef42,
		toolID:   0x880,
		typeCode: libinput.TabletToolTypePen,
		pressure: true,
		tilt:     true,
		unique:   true,
	}
	tool := wrapTool(installFakeTool(t, state))
	defer tool.Close()

	for i := 0; i < 2; i++ {
		if got := tool.Serial(); got != 0xabcdef42 {
			t.Errorf("Serial call %d = %#x, want 0xabcdef42", i, got)
		}
		if got := tool.ToolID(); got != 0x880 {
			t.Errorf("ToolID call %d = %#x, want 0x880", i, got)
		}
		if !tool.HasPressure() {
			t.Errorf("HasPressure call %d = false, want true", i)
		}
		if !tool.HasTilt() {
			t.Errorf("HasTilt call %d = false, want true", i)
		}
		if !tool.IsUnique() {
			t.Errorf("IsUnique call %d = false, want true", i)
		}
	}
}

func TestClonesAreReferentiallyConsistent(t *testing.T) {
	state := &fakeToolState{
		serial:   77,
		toolID:   12,
		typeCode: libinput.TabletToolTypeEraser,
		pressure: true,
	}
	tool := wrapTool(installFakeTool(t, state))
	defer tool.Close()

	clone := tool.Clone()
	defer clone.Close()

	if tool.Serial() != clone.Serial() {
		t.Error("clone reports different serial")
	}
	if tool.ToolID() != clone.ToolID() {
		t.Error("clone reports different tool ID")
	}
	if tool.HasPressure() != clone.HasPressure() {
		t.Error("clone reports different pressure capability")
	}
	if tool.Type() != clone.Type() {
		t.Error("clone reports different tool type")
	}
}

func TestToolUnreportedValuesAreZero(t *testing.T) {
	state := &fakeToolState{typeCode: libinput.TabletToolTypePen}
	tool := wrapTool(installFakeTool(t, state))
	defer tool.Close()

	if got := tool.Serial(); got != 0 {
		t.Errorf("Serial with no reported serial = %d, want 0", got)
	}
	if got := tool.ToolID(); got != 0 {
		t.Errorf("ToolID with no tool ID support = %d, want 0", got)
	}
	if tool.HasPressure() || tool.HasTilt() || tool.IsUnique() {
		t.Error("capabilities without native support should be false")
	}
}

func TestToolTypeFromEraserTag(t *testing.T) {
	state := &fakeToolState{typeCode: libinput.TabletToolTypeEraser}
	tool := wrapTool(installFakeTool(t, state))
	defer tool.Close()

	if got := tool.Type(); got != ToolTypeEraser {
		t.Errorf("Type = %v, want eraser", got)
	}
}

func TestToolTypeTranslation(t *testing.T) {
	tests := []struct {
		code  uint32
		totem bool
		want  ToolType
	}{
		{libinput.TabletToolTypePen, false, ToolTypePen},
		{libinput.TabletToolTypeEraser, false, ToolTypeEraser},
		{libinput.TabletToolTypeBrush, false, ToolTypeBrush},
		{libinput.TabletToolTypePencil, false, ToolTypePencil},
		{libinput.TabletToolTypeAirbrush, false, ToolTypeAirbrush},
		{libinput.TabletToolTypeMouse, false, ToolTypeMouse},
		{libinput.TabletToolTypeLens, false, ToolTypeLens},
		{libinput.TabletToolTypeTotem, true, ToolTypeTotem},
		// Totem from a pre-1.14 library is treated as unknown.
		{libinput.TabletToolTypeTotem, false, ToolTypeUnknown},
		// Reserved/future codes degrade to unknown, never panic.
		{0, true, ToolTypeUnknown},
		{9999, true, ToolTypeUnknown},
		{^uint32(0), false, ToolTypeUnknown},
	}

	for _, tt := range tests {
		if got := toolTypeFromCode(tt.code, tt.totem); got != tt.want {
			t.Errorf("toolTypeFromCode(%d, totem=%v) = %v, want %v", tt.code, tt.totem, got, tt.want)
		}
	}
}

func TestToolTypeString(t *testing.T) {
	names := map[ToolType]string{
		ToolTypeUnknown:  "unknown",
		ToolTypePen:      "pen",
		ToolTypeEraser:   "eraser",
		ToolTypeBrush:    "brush",
		ToolTypePencil:   "pencil",
		ToolTypeAirbrush: "airbrush",
		ToolTypeMouse:    "mouse",
		ToolTypeLens:     "lens",
		ToolTypeTotem:    "totem",
		ToolType(99):     "unknown",
	}
	for tt, want := range names {
		if got := tt.String(); got != want {
			t.Errorf("ToolType(%d).String() = %q, want %q", int(tt), got, want)
		}
	}
}

func TestNilToolIsInert(t *testing.T) {
	var tool *Tool

	if tool.Serial() != 0 || tool.ToolID() != 0 {
		t.Error("nil tool should report zero identifiers")
	}
	if tool.HasButton(0x140) || tool.HasDistance() || tool.HasSize() {
		t.Error("nil tool should report no capabilities")
	}
	if tool.Type() != ToolTypeUnknown {
		t.Error("nil tool should report unknown type")
	}
	if tool.Clone() != nil {
		t.Error("nil tool Clone should return nil")
	}
	if err := tool.Close(); err != nil {
		t.Errorf("nil tool Close: %v", err)
	}
	if tool.Raw() != nil {
		t.Error("nil tool Raw should return nil")
	}
}
