//go:build (linux || freebsd) && (amd64 || arm64)

package libinput

// Event type values from enum libinput_event_type.
const (
	EventNone          uint32 = 0
	EventDeviceAdded   uint32 = 1
	EventDeviceRemoved uint32 = 2

	EventKeyboardKey uint32 = 300

	EventPointerMotion           uint32 = 400
	EventPointerMotionAbsolute   uint32 = 401
	EventPointerButton           uint32 = 402
	EventPointerAxis             uint32 = 403
	EventPointerScrollWheel      uint32 = 404
	EventPointerScrollFinger     uint32 = 405
	EventPointerScrollContinuous uint32 = 406

	EventTouchDown   uint32 = 500
	EventTouchUp     uint32 = 501
	EventTouchMotion uint32 = 502
	EventTouchCancel uint32 = 503
	EventTouchFrame  uint32 = 504

	EventTabletToolAxis      uint32 = 600
	EventTabletToolProximity uint32 = 601
	EventTabletToolTip       uint32 = 602
	EventTabletToolButton    uint32 = 603

	EventTabletPadButton uint32 = 700
	EventTabletPadRing   uint32 = 701
	EventTabletPadStrip  uint32 = 702
	EventTabletPadKey    uint32 = 703

	EventGestureSwipeBegin  uint32 = 800
	EventGestureSwipeUpdate uint32 = 801
	EventGestureSwipeEnd    uint32 = 802
	EventGesturePinchBegin  uint32 = 803
	EventGesturePinchUpdate uint32 = 804
	EventGesturePinchEnd    uint32 = 805
	EventGestureHoldBegin   uint32 = 806
	EventGestureHoldEnd     uint32 = 807

	EventSwitchToggle uint32 = 900
)

// Device capability values from enum libinput_device_capability.
const (
	DeviceCapKeyboard   uint32 = 0
	DeviceCapPointer    uint32 = 1
	DeviceCapTouch      uint32 = 2
	DeviceCapTabletTool uint32 = 3
	DeviceCapTabletPad  uint32 = 4
	DeviceCapGesture    uint32 = 5
	DeviceCapSwitch     uint32 = 6
)

// Tablet tool type values from enum libinput_tablet_tool_type.
const (
	TabletToolTypePen      uint32 = 1
	TabletToolTypeEraser   uint32 = 2
	TabletToolTypeBrush    uint32 = 3
	TabletToolTypePencil   uint32 = 4
	TabletToolTypeAirbrush uint32 = 5
	TabletToolTypeMouse    uint32 = 6
	TabletToolTypeLens     uint32 = 7
	// Requires libinput >= 1.14, see HasToolSizeSupport.
	TabletToolTypeTotem uint32 = 8
)

// Key state values from enum libinput_key_state.
const (
	KeyStateReleased uint32 = 0
	KeyStatePressed  uint32 = 1
)

// Button state values from enum libinput_button_state.
const (
	ButtonStateReleased uint32 = 0
	ButtonStatePressed  uint32 = 1
)

// Tip state values from enum libinput_tablet_tool_tip_state.
const (
	TabletToolTipUp   uint32 = 0
	TabletToolTipDown uint32 = 1
)

// Proximity state values from enum libinput_tablet_tool_proximity_state.
const (
	TabletToolProximityOut uint32 = 0
	TabletToolProximityIn  uint32 = 1
)

// Scroll axis values from enum libinput_pointer_axis.
const (
	PointerAxisScrollVertical   uint32 = 0
	PointerAxisScrollHorizontal uint32 = 1
)

// Log priority values from enum libinput_log_priority.
const (
	LogPriorityDebug int32 = 10
	LogPriorityInfo  int32 = 20
	LogPriorityError int32 = 30
)
