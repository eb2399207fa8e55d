//go:build (linux || freebsd) && (amd64 || arm64)

package libinput

import "unsafe"

// PointerEvent is an opaque libinput pointer event.
type PointerEvent = unsafe.Pointer

// KeyboardEvent is an opaque libinput keyboard event.
type KeyboardEvent = unsafe.Pointer

// TouchEvent is an opaque libinput touch event.
type TouchEvent = unsafe.Pointer

// TabletToolEvent is an opaque libinput tablet tool event.
type TabletToolEvent = unsafe.Pointer

// Event function bindings
var (
	liEventDestroy   func(ev unsafe.Pointer)
	liEventGetType   func(ev unsafe.Pointer) uint32
	liEventGetDevice func(ev unsafe.Pointer) unsafe.Pointer

	liEventGetPointerEvent    func(ev unsafe.Pointer) unsafe.Pointer
	liEventGetKeyboardEvent   func(ev unsafe.Pointer) unsafe.Pointer
	liEventGetTouchEvent      func(ev unsafe.Pointer) unsafe.Pointer
	liEventGetTabletToolEvent func(ev unsafe.Pointer) unsafe.Pointer

	liKeyboardGetKey      func(ev unsafe.Pointer) uint32
	liKeyboardGetKeyState func(ev unsafe.Pointer) uint32
	liKeyboardGetTimeUsec func(ev unsafe.Pointer) uint64

	liPointerGetTimeUsec     func(ev unsafe.Pointer) uint64
	liPointerGetDX           func(ev unsafe.Pointer) float64
	liPointerGetDY           func(ev unsafe.Pointer) float64
	liPointerGetAbsoluteX    func(ev unsafe.Pointer) float64
	liPointerGetAbsoluteY    func(ev unsafe.Pointer) float64
	liPointerGetAbsXTrans    func(ev unsafe.Pointer, width uint32) float64
	liPointerGetAbsYTrans    func(ev unsafe.Pointer, height uint32) float64
	liPointerGetButton       func(ev unsafe.Pointer) uint32
	liPointerGetButtonState  func(ev unsafe.Pointer) uint32
	liPointerHasAxis         func(ev unsafe.Pointer, axis uint32) int32
	liPointerGetAxisValue    func(ev unsafe.Pointer, axis uint32) float64
	liPointerGetScrollValue  func(ev unsafe.Pointer, axis uint32) float64 // libinput >= 1.19

	liTouchGetTimeUsec func(ev unsafe.Pointer) uint64
	liTouchGetSlot     func(ev unsafe.Pointer) int32
	liTouchGetSeatSlot func(ev unsafe.Pointer) int32
	liTouchGetX        func(ev unsafe.Pointer) float64
	liTouchGetY        func(ev unsafe.Pointer) float64
	liTouchGetXTrans   func(ev unsafe.Pointer, width uint32) float64
	liTouchGetYTrans   func(ev unsafe.Pointer, height uint32) float64

	liTabletGetTimeUsec    func(ev unsafe.Pointer) uint64
	liTabletGetTool        func(ev unsafe.Pointer) unsafe.Pointer
	liTabletGetX           func(ev unsafe.Pointer) float64
	liTabletGetY           func(ev unsafe.Pointer) float64
	liTabletGetPressure    func(ev unsafe.Pointer) float64
	liTabletGetDistance    func(ev unsafe.Pointer) float64
	liTabletGetTiltX       func(ev unsafe.Pointer) float64
	liTabletGetTiltY       func(ev unsafe.Pointer) float64
	liTabletGetRotation    func(ev unsafe.Pointer) float64
	liTabletGetSliderPos   func(ev unsafe.Pointer) float64
	liTabletGetWheelDelta  func(ev unsafe.Pointer) float64
	liTabletGetTipState    func(ev unsafe.Pointer) uint32
	liTabletGetProximity   func(ev unsafe.Pointer) uint32
	liTabletGetButton      func(ev unsafe.Pointer) uint32
	liTabletGetButtonState func(ev unsafe.Pointer) uint32
)

func registerEventBindings(lib uintptr) {
	register(&liEventDestroy, lib, "libinput_event_destroy")
	register(&liEventGetType, lib, "libinput_event_get_type")
	register(&liEventGetDevice, lib, "libinput_event_get_device")

	register(&liEventGetPointerEvent, lib, "libinput_event_get_pointer_event")
	register(&liEventGetKeyboardEvent, lib, "libinput_event_get_keyboard_event")
	register(&liEventGetTouchEvent, lib, "libinput_event_get_touch_event")
	register(&liEventGetTabletToolEvent, lib, "libinput_event_get_tablet_tool_event")

	register(&liKeyboardGetKey, lib, "libinput_event_keyboard_get_key")
	register(&liKeyboardGetKeyState, lib, "libinput_event_keyboard_get_key_state")
	register(&liKeyboardGetTimeUsec, lib, "libinput_event_keyboard_get_time_usec")

	register(&liPointerGetTimeUsec, lib, "libinput_event_pointer_get_time_usec")
	register(&liPointerGetDX, lib, "libinput_event_pointer_get_dx")
	register(&liPointerGetDY, lib, "libinput_event_pointer_get_dy")
	register(&liPointerGetAbsoluteX, lib, "libinput_event_pointer_get_absolute_x")
	register(&liPointerGetAbsoluteY, lib, "libinput_event_pointer_get_absolute_y")
	register(&liPointerGetAbsXTrans, lib, "libinput_event_pointer_get_absolute_x_transformed")
	register(&liPointerGetAbsYTrans, lib, "libinput_event_pointer_get_absolute_y_transformed")
	register(&liPointerGetButton, lib, "libinput_event_pointer_get_button")
	register(&liPointerGetButtonState, lib, "libinput_event_pointer_get_button_state")
	register(&liPointerHasAxis, lib, "libinput_event_pointer_has_axis")
	register(&liPointerGetAxisValue, lib, "libinput_event_pointer_get_axis_value")
	registerOptional(&liPointerGetScrollValue, lib, "libinput_event_pointer_get_scroll_value")

	register(&liTouchGetTimeUsec, lib, "libinput_event_touch_get_time_usec")
	register(&liTouchGetSlot, lib, "libinput_event_touch_get_slot")
	register(&liTouchGetSeatSlot, lib, "libinput_event_touch_get_seat_slot")
	register(&liTouchGetX, lib, "libinput_event_touch_get_x")
	register(&liTouchGetY, lib, "libinput_event_touch_get_y")
	register(&liTouchGetXTrans, lib, "libinput_event_touch_get_x_transformed")
	register(&liTouchGetYTrans, lib, "libinput_event_touch_get_y_transformed")

	register(&liTabletGetTimeUsec, lib, "libinput_event_tablet_tool_get_time_usec")
	register(&liTabletGetTool, lib, "libinput_event_tablet_tool_get_tool")
	register(&liTabletGetX, lib, "libinput_event_tablet_tool_get_x")
	register(&liTabletGetY, lib, "libinput_event_tablet_tool_get_y")
	register(&liTabletGetPressure, lib, "libinput_event_tablet_tool_get_pressure")
	register(&liTabletGetDistance, lib, "libinput_event_tablet_tool_get_distance")
	register(&liTabletGetTiltX, lib, "libinput_event_tablet_tool_get_tilt_x")
	register(&liTabletGetTiltY, lib, "libinput_event_tablet_tool_get_tilt_y")
	register(&liTabletGetRotation, lib, "libinput_event_tablet_tool_get_rotation")
	register(&liTabletGetSliderPos, lib, "libinput_event_tablet_tool_get_slider_position")
	register(&liTabletGetWheelDelta, lib, "libinput_event_tablet_tool_get_wheel_delta")
	register(&liTabletGetTipState, lib, "libinput_event_tablet_tool_get_tip_state")
	register(&liTabletGetProximity, lib, "libinput_event_tablet_tool_get_proximity_state")
	register(&liTabletGetButton, lib, "libinput_event_tablet_tool_get_button")
	register(&liTabletGetButtonState, lib, "libinput_event_tablet_tool_get_button_state")
}

// EventDestroy destroys an event, freeing its resources.
func EventDestroy(ev Event) {
	if ev == nil || liEventDestroy == nil {
		return
	}
	liEventDestroy(ev)
}

// EventGetType returns the raw event type code (an Event* value).
func EventGetType(ev Event) uint32 {
	if ev == nil || liEventGetType == nil {
		return EventNone
	}
	return liEventGetType(ev)
}

// EventGetDevice returns the device the event originated from. The device is
// owned by the event; callers who keep it must take a reference with
// DeviceRef.
func EventGetDevice(ev Event) Device {
	if ev == nil || liEventGetDevice == nil {
		return nil
	}
	return liEventGetDevice(ev)
}

// EventGetPointerEvent returns the pointer view of an event, or nil if the
// event is not a pointer event. The view is valid only while the event lives.
func EventGetPointerEvent(ev Event) PointerEvent {
	if ev == nil || liEventGetPointerEvent == nil {
		return nil
	}
	return liEventGetPointerEvent(ev)
}

// EventGetKeyboardEvent returns the keyboard view of an event, or nil.
func EventGetKeyboardEvent(ev Event) KeyboardEvent {
	if ev == nil || liEventGetKeyboardEvent == nil {
		return nil
	}
	return liEventGetKeyboardEvent(ev)
}

// EventGetTouchEvent returns the touch view of an event, or nil.
func EventGetTouchEvent(ev Event) TouchEvent {
	if ev == nil || liEventGetTouchEvent == nil {
		return nil
	}
	return liEventGetTouchEvent(ev)
}

// EventGetTabletToolEvent returns the tablet tool view of an event, or nil.
func EventGetTabletToolEvent(ev Event) TabletToolEvent {
	if ev == nil || liEventGetTabletToolEvent == nil {
		return nil
	}
	return liEventGetTabletToolEvent(ev)
}

// KeyboardGetKey returns the key code of a keyboard event.
func KeyboardGetKey(ev KeyboardEvent) uint32 {
	if ev == nil || liKeyboardGetKey == nil {
		return 0
	}
	return liKeyboardGetKey(ev)
}

// KeyboardGetKeyState returns the raw key state (KeyState* value).
func KeyboardGetKeyState(ev KeyboardEvent) uint32 {
	if ev == nil || liKeyboardGetKeyState == nil {
		return KeyStateReleased
	}
	return liKeyboardGetKeyState(ev)
}

// KeyboardGetTimeUsec returns the event timestamp in microseconds.
func KeyboardGetTimeUsec(ev KeyboardEvent) uint64 {
	if ev == nil || liKeyboardGetTimeUsec == nil {
		return 0
	}
	return liKeyboardGetTimeUsec(ev)
}

// PointerGetTimeUsec returns the event timestamp in microseconds.
func PointerGetTimeUsec(ev PointerEvent) uint64 {
	if ev == nil || liPointerGetTimeUsec == nil {
		return 0
	}
	return liPointerGetTimeUsec(ev)
}

// PointerGetDX returns the relative x movement (accelerated).
func PointerGetDX(ev PointerEvent) float64 {
	if ev == nil || liPointerGetDX == nil {
		return 0
	}
	return liPointerGetDX(ev)
}

// PointerGetDY returns the relative y movement (accelerated).
func PointerGetDY(ev PointerEvent) float64 {
	if ev == nil || liPointerGetDY == nil {
		return 0
	}
	return liPointerGetDY(ev)
}

// PointerGetAbsoluteX returns the absolute x position in mm.
func PointerGetAbsoluteX(ev PointerEvent) float64 {
	if ev == nil || liPointerGetAbsoluteX == nil {
		return 0
	}
	return liPointerGetAbsoluteX(ev)
}

// PointerGetAbsoluteY returns the absolute y position in mm.
func PointerGetAbsoluteY(ev PointerEvent) float64 {
	if ev == nil || liPointerGetAbsoluteY == nil {
		return 0
	}
	return liPointerGetAbsoluteY(ev)
}

// PointerGetAbsoluteXTransformed returns the absolute x position scaled to a
// screen width.
func PointerGetAbsoluteXTransformed(ev PointerEvent, width uint32) float64 {
	if ev == nil || liPointerGetAbsXTrans == nil {
		return 0
	}
	return liPointerGetAbsXTrans(ev, width)
}

// PointerGetAbsoluteYTransformed returns the absolute y position scaled to a
// screen height.
func PointerGetAbsoluteYTransformed(ev PointerEvent, height uint32) float64 {
	if ev == nil || liPointerGetAbsYTrans == nil {
		return 0
	}
	return liPointerGetAbsYTrans(ev, height)
}

// PointerGetButton returns the button code of a button event.
func PointerGetButton(ev PointerEvent) uint32 {
	if ev == nil || liPointerGetButton == nil {
		return 0
	}
	return liPointerGetButton(ev)
}

// PointerGetButtonState returns the raw button state (ButtonState* value).
func PointerGetButtonState(ev PointerEvent) uint32 {
	if ev == nil || liPointerGetButtonState == nil {
		return ButtonStateReleased
	}
	return liPointerGetButtonState(ev)
}

// PointerHasAxis reports whether an axis event carries the given scroll axis.
func PointerHasAxis(ev PointerEvent, axis uint32) bool {
	if ev == nil || liPointerHasAxis == nil {
		return false
	}
	return liPointerHasAxis(ev, axis) != 0
}

// PointerGetScrollValue returns the scroll movement along an axis. On
// libinput >= 1.19 this uses the scroll-event API, otherwise it falls back
// to the legacy axis value.
func PointerGetScrollValue(ev PointerEvent, axis uint32) float64 {
	if ev == nil {
		return 0
	}
	if liPointerGetScrollValue != nil {
		return liPointerGetScrollValue(ev, axis)
	}
	if liPointerGetAxisValue != nil {
		return liPointerGetAxisValue(ev, axis)
	}
	return 0
}

// TouchGetTimeUsec returns the event timestamp in microseconds.
func TouchGetTimeUsec(ev TouchEvent) uint64 {
	if ev == nil || liTouchGetTimeUsec == nil {
		return 0
	}
	return liTouchGetTimeUsec(ev)
}

// TouchGetSlot returns the hardware slot of the touch point, or -1.
func TouchGetSlot(ev TouchEvent) int32 {
	if ev == nil || liTouchGetSlot == nil {
		return -1
	}
	return liTouchGetSlot(ev)
}

// TouchGetSeatSlot returns the seat-wide slot of the touch point, or -1.
func TouchGetSeatSlot(ev TouchEvent) int32 {
	if ev == nil || liTouchGetSeatSlot == nil {
		return -1
	}
	return liTouchGetSeatSlot(ev)
}

// TouchGetX returns the absolute x position in mm.
func TouchGetX(ev TouchEvent) float64 {
	if ev == nil || liTouchGetX == nil {
		return 0
	}
	return liTouchGetX(ev)
}

// TouchGetY returns the absolute y position in mm.
func TouchGetY(ev TouchEvent) float64 {
	if ev == nil || liTouchGetY == nil {
		return 0
	}
	return liTouchGetY(ev)
}

// TouchGetXTransformed returns the x position scaled to a screen width.
func TouchGetXTransformed(ev TouchEvent, width uint32) float64 {
	if ev == nil || liTouchGetXTrans == nil {
		return 0
	}
	return liTouchGetXTrans(ev, width)
}

// TouchGetYTransformed returns the y position scaled to a screen height.
func TouchGetYTransformed(ev TouchEvent, height uint32) float64 {
	if ev == nil || liTouchGetYTrans == nil {
		return 0
	}
	return liTouchGetYTrans(ev, height)
}

// TabletToolEventGetTimeUsec returns the event timestamp in microseconds.
func TabletToolEventGetTimeUsec(ev TabletToolEvent) uint64 {
	if ev == nil || liTabletGetTimeUsec == nil {
		return 0
	}
	return liTabletGetTimeUsec(ev)
}

// TabletToolEventGetTool returns the tool that generated the event. The tool
// is owned by the event; callers who keep it must take a reference with
// TabletToolRef.
func TabletToolEventGetTool(ev TabletToolEvent) TabletTool {
	if ev == nil || liTabletGetTool == nil {
		return nil
	}
	return liTabletGetTool(ev)
}

// TabletToolEventGetX returns the absolute x position in mm.
func TabletToolEventGetX(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetX == nil {
		return 0
	}
	return liTabletGetX(ev)
}

// TabletToolEventGetY returns the absolute y position in mm.
func TabletToolEventGetY(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetY == nil {
		return 0
	}
	return liTabletGetY(ev)
}

// TabletToolEventGetPressure returns the normalized pressure [0, 1].
func TabletToolEventGetPressure(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetPressure == nil {
		return 0
	}
	return liTabletGetPressure(ev)
}

// TabletToolEventGetDistance returns the normalized hover distance [0, 1].
func TabletToolEventGetDistance(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetDistance == nil {
		return 0
	}
	return liTabletGetDistance(ev)
}

// TabletToolEventGetTiltX returns the tilt around the x axis in degrees.
func TabletToolEventGetTiltX(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetTiltX == nil {
		return 0
	}
	return liTabletGetTiltX(ev)
}

// TabletToolEventGetTiltY returns the tilt around the y axis in degrees.
func TabletToolEventGetTiltY(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetTiltY == nil {
		return 0
	}
	return liTabletGetTiltY(ev)
}

// TabletToolEventGetRotation returns the z rotation in degrees.
func TabletToolEventGetRotation(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetRotation == nil {
		return 0
	}
	return liTabletGetRotation(ev)
}

// TabletToolEventGetSliderPosition returns the slider position [-1, 1].
func TabletToolEventGetSliderPosition(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetSliderPos == nil {
		return 0
	}
	return liTabletGetSliderPos(ev)
}

// TabletToolEventGetWheelDelta returns the wheel delta in degrees.
func TabletToolEventGetWheelDelta(ev TabletToolEvent) float64 {
	if ev == nil || liTabletGetWheelDelta == nil {
		return 0
	}
	return liTabletGetWheelDelta(ev)
}

// TabletToolEventGetTipState returns the raw tip state (TabletToolTip* value).
func TabletToolEventGetTipState(ev TabletToolEvent) uint32 {
	if ev == nil || liTabletGetTipState == nil {
		return TabletToolTipUp
	}
	return liTabletGetTipState(ev)
}

// TabletToolEventGetProximityState returns the raw proximity state
// (TabletToolProximity* value).
func TabletToolEventGetProximityState(ev TabletToolEvent) uint32 {
	if ev == nil || liTabletGetProximity == nil {
		return TabletToolProximityOut
	}
	return liTabletGetProximity(ev)
}

// TabletToolEventGetButton returns the button code of a button event.
func TabletToolEventGetButton(ev TabletToolEvent) uint32 {
	if ev == nil || liTabletGetButton == nil {
		return 0
	}
	return liTabletGetButton(ev)
}

// TabletToolEventGetButtonState returns the raw button state.
func TabletToolEventGetButtonState(ev TabletToolEvent) uint32 {
	if ev == nil || liTabletGetButtonState == nil {
		return ButtonStateReleased
	}
	return liTabletGetButtonState(ev)
}
