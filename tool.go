//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// ToolType is the default usage of a tablet tool as advertised by the
// manufacturer. Multiple different physical tools may share the same tool
// type, e.g. a Wacom Classic Pen, Wacom Pro Pen and a Wacom Grip Pen are all
// of type ToolTypePen. Use Tool.ToolID to get a specific model where
// applicable.
//
// Note that on some devices the eraser tool is on the tail end of a pen
// device; on others, e.g. the MS Surface 3, the eraser is the pen tip while
// a button is held down.
type ToolType int

// Tool types. ToolTypeUnknown is returned for codes this package does not
// recognize, typically from a newer libinput than it was written against.
const (
	ToolTypeUnknown ToolType = iota
	ToolTypePen              // A generic pen
	ToolTypeEraser           // Eraser
	ToolTypeBrush            // A paintbrush-like tool
	ToolTypePencil           // Physical drawing tool, e.g. Wacom Inking Pen
	ToolTypeAirbrush         // An airbrush-like tool
	ToolTypeMouse            // A mouse bound to the tablet
	ToolTypeLens             // A mouse tool with a lens
	ToolTypeTotem            // A rotary device with positional and rotation data (libinput >= 1.14)
)

// String returns the tool type name.
func (t ToolType) String() string {
	switch t {
	case ToolTypePen:
		return "pen"
	case ToolTypeEraser:
		return "eraser"
	case ToolTypeBrush:
		return "brush"
	case ToolTypePencil:
		return "pencil"
	case ToolTypeAirbrush:
		return "airbrush"
	case ToolTypeMouse:
		return "mouse"
	case ToolTypeLens:
		return "lens"
	case ToolTypeTotem:
		return "totem"
	default:
		return "unknown"
	}
}

// toolTypeCodes is the total mapping from native tool type codes to variants.
// Codes outside the table degrade to ToolTypeUnknown; they must never fail.
var toolTypeCodes = map[uint32]ToolType{
	libinput.TabletToolTypePen:      ToolTypePen,
	libinput.TabletToolTypeEraser:   ToolTypeEraser,
	libinput.TabletToolTypeBrush:    ToolTypeBrush,
	libinput.TabletToolTypePencil:   ToolTypePencil,
	libinput.TabletToolTypeAirbrush: ToolTypeAirbrush,
	libinput.TabletToolTypeMouse:    ToolTypeMouse,
	libinput.TabletToolTypeLens:     ToolTypeLens,
	libinput.TabletToolTypeTotem:    ToolTypeTotem,
}

// toolTypeFromCode translates a native tool type code. totem gates the
// 1.14-only variant: when the loaded libinput predates it, the code is
// treated like any other unknown value.
func toolTypeFromCode(code uint32, totem bool) ToolType {
	tt, ok := toolTypeCodes[code]
	if !ok || (tt == ToolTypeTotem && !totem) {
		warnf("unknown tablet tool type code from libinput: %d", code)
		return ToolTypeUnknown
	}
	return tt
}

// Binding indirection so lifetime tests can substitute counting fakes.
var (
	toolRefFn         = libinput.TabletToolRef
	toolUnrefFn       = libinput.TabletToolUnref
	toolSerialFn      = libinput.TabletToolGetSerial
	toolIDFn          = libinput.TabletToolGetToolID
	toolTypeFn        = libinput.TabletToolGetType
	toolHasButtonFn   = libinput.TabletToolHasButton
	toolHasDistanceFn = libinput.TabletToolHasDistance
	toolHasPressureFn = libinput.TabletToolHasPressure
	toolHasRotationFn = libinput.TabletToolHasRotation
	toolHasSliderFn   = libinput.TabletToolHasSlider
	toolHasTiltFn     = libinput.TabletToolHasTilt
	toolHasWheelFn    = libinput.TabletToolHasWheel
	toolHasSizeFn     = libinput.TabletToolHasSize
	toolIsUniqueFn    = libinput.TabletToolIsUnique
)

// Tool represents a tool in use by a device with the tablet-tool capability.
//
// Tablet events generated by such a device are bound to a specific tool
// rather than coming from the device directly. Depending on the hardware it
// is possible to track the same physical tool across multiple devices.
//
// A Tool holds one reference on the underlying native object. Clone takes an
// additional reference; Close releases the wrapper's reference. The native
// object is freed only when the last reference is released. Tools are always
// derived from the native layer (via TabletToolEvent.Tool); there is no way
// to construct one from nothing.
type Tool struct {
	ptr libinput.TabletTool
}

// wrapTool wraps a raw handle, taking over one existing reference.
// No additional reference is taken.
func wrapTool(raw libinput.TabletTool) *Tool {
	if raw == nil {
		return nil
	}
	return &Tool{ptr: raw}
}

// wrapToolBorrowed wraps a raw handle whose reference is owned by someone
// else (an event), taking a new reference for the wrapper.
func wrapToolBorrowed(raw libinput.TabletTool) *Tool {
	if raw == nil {
		return nil
	}
	return wrapTool(toolRefFn(raw))
}

// Raw returns the underlying opaque handle for interop with the low-level
// libinput package. The handle is only valid while the Tool is open.
func (t *Tool) Raw() libinput.TabletTool {
	if t == nil {
		return nil
	}
	return t.ptr
}

// Clone returns a new Tool sharing the same underlying object, taking an
// additional reference on it.
func (t *Tool) Clone() *Tool {
	if t == nil || t.ptr == nil {
		return nil
	}
	return wrapTool(toolRefFn(t.ptr))
}

// Close releases the wrapper's reference. The underlying object is freed
// when the last reference is released. Close is idempotent; accessors on a
// closed Tool return zero values.
func (t *Tool) Close() error {
	if t == nil || t.ptr == nil {
		return nil
	}
	toolUnrefFn(t.ptr)
	t.ptr = nil
	return nil
}

// Serial returns the serial number of the tool. If the tool does not report
// a serial number, Serial returns zero.
func (t *Tool) Serial() uint64 {
	if t == nil {
		return 0
	}
	return toolSerialFn(t.ptr)
}

// ToolID returns the vendor-specific tool ID. If nonzero, this identifies
// the specific model of the tool with more precision than Type. Not all
// tablets support tool IDs; zero means unsupported. Tablets known to support
// them include the Wacom Intuos 3, 4, 5, Wacom Cintiq and Wacom Intuos Pro
// series.
func (t *Tool) ToolID() uint64 {
	if t == nil {
		return 0
	}
	return toolIDFn(t.ptr)
}

// Type returns the tool type, or ToolTypeUnknown if libinput reported a code
// this package does not know.
func (t *Tool) Type() ToolType {
	if t == nil || t.ptr == nil {
		return ToolTypeUnknown
	}
	return toolTypeFromCode(toolTypeFn(t.ptr), HasToolSizeSupport())
}

// HasButton reports whether the tool declares a button with the passed-in
// code (see linux/input-event-codes.h). The code is not range-validated.
func (t *Tool) HasButton(code uint32) bool {
	if t == nil {
		return false
	}
	return toolHasButtonFn(t.ptr, code)
}

// HasDistance reports whether the tool supports a distance axis.
func (t *Tool) HasDistance() bool {
	if t == nil {
		return false
	}
	return toolHasDistanceFn(t.ptr)
}

// HasPressure reports whether the tool supports pressure.
func (t *Tool) HasPressure() bool {
	if t == nil {
		return false
	}
	return toolHasPressureFn(t.ptr)
}

// HasRotation reports whether the tool supports z-rotation.
func (t *Tool) HasRotation() bool {
	if t == nil {
		return false
	}
	return toolHasRotationFn(t.ptr)
}

// HasSlider reports whether the tool has a slider axis.
func (t *Tool) HasSlider() bool {
	if t == nil {
		return false
	}
	return toolHasSliderFn(t.ptr)
}

// HasTilt reports whether the tool supports tilt.
func (t *Tool) HasTilt() bool {
	if t == nil {
		return false
	}
	return toolHasTiltFn(t.ptr)
}

// HasWheel reports whether the tool has a relative wheel.
func (t *Tool) HasWheel() bool {
	if t == nil {
		return false
	}
	return toolHasWheelFn(t.ptr)
}

// HasSize reports whether the tool reports contact size as an ellipse major
// and minor. Where the underlying hardware only supports one of either major
// or minor, libinput emulates the other axis as a circular contact. Always
// false on libinput < 1.14.
func (t *Tool) HasSize() bool {
	if t == nil {
		return false
	}
	return toolHasSizeFn(t.ptr)
}

// IsUnique reports whether the physical tool can be uniquely identified by
// libinput. If so, keeping a reference to the tool allows tracking it across
// proximity-out sequences and across compatible tablets.
func (t *Tool) IsUnique() bool {
	if t == nil {
		return false
	}
	return toolIsUniqueFn(t.ptr)
}
