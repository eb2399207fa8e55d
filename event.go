//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/libinput"
)

// EventType classifies an event pulled off a context.
type EventType int

// Event types. EventTypeUnknown is returned for codes this package does not
// recognize, typically from a newer libinput than it was written against.
const (
	EventTypeUnknown EventType = iota
	EventTypeNone

	EventTypeDeviceAdded
	EventTypeDeviceRemoved

	EventTypeKeyboardKey

	EventTypePointerMotion
	EventTypePointerMotionAbsolute
	EventTypePointerButton
	EventTypePointerAxis
	EventTypePointerScrollWheel
	EventTypePointerScrollFinger
	EventTypePointerScrollContinuous

	EventTypeTouchDown
	EventTypeTouchUp
	EventTypeTouchMotion
	EventTypeTouchCancel
	EventTypeTouchFrame

	EventTypeTabletToolAxis
	EventTypeTabletToolProximity
	EventTypeTabletToolTip
	EventTypeTabletToolButton

	EventTypeTabletPadButton
	EventTypeTabletPadRing
	EventTypeTabletPadStrip
	EventTypeTabletPadKey

	EventTypeGestureSwipeBegin
	EventTypeGestureSwipeUpdate
	EventTypeGestureSwipeEnd
	EventTypeGesturePinchBegin
	EventTypeGesturePinchUpdate
	EventTypeGesturePinchEnd
	EventTypeGestureHoldBegin
	EventTypeGestureHoldEnd

	EventTypeSwitchToggle
)

// eventTypeCodes is the total mapping from native event type codes to
// variants. Codes outside the table degrade to EventTypeUnknown.
var eventTypeCodes = map[uint32]EventType{
	libinput.EventNone:          EventTypeNone,
	libinput.EventDeviceAdded:   EventTypeDeviceAdded,
	libinput.EventDeviceRemoved: EventTypeDeviceRemoved,

	libinput.EventKeyboardKey: EventTypeKeyboardKey,

	libinput.EventPointerMotion:           EventTypePointerMotion,
	libinput.EventPointerMotionAbsolute:   EventTypePointerMotionAbsolute,
	libinput.EventPointerButton:           EventTypePointerButton,
	libinput.EventPointerAxis:             EventTypePointerAxis,
	libinput.EventPointerScrollWheel:      EventTypePointerScrollWheel,
	libinput.EventPointerScrollFinger:     EventTypePointerScrollFinger,
	libinput.EventPointerScrollContinuous: EventTypePointerScrollContinuous,

	libinput.EventTouchDown:   EventTypeTouchDown,
	libinput.EventTouchUp:     EventTypeTouchUp,
	libinput.EventTouchMotion: EventTypeTouchMotion,
	libinput.EventTouchCancel: EventTypeTouchCancel,
	libinput.EventTouchFrame:  EventTypeTouchFrame,

	libinput.EventTabletToolAxis:      EventTypeTabletToolAxis,
	libinput.EventTabletToolProximity: EventTypeTabletToolProximity,
	libinput.EventTabletToolTip:       EventTypeTabletToolTip,
	libinput.EventTabletToolButton:    EventTypeTabletToolButton,

	libinput.EventTabletPadButton: EventTypeTabletPadButton,
	libinput.EventTabletPadRing:   EventTypeTabletPadRing,
	libinput.EventTabletPadStrip:  EventTypeTabletPadStrip,
	libinput.EventTabletPadKey:    EventTypeTabletPadKey,

	libinput.EventGestureSwipeBegin:  EventTypeGestureSwipeBegin,
	libinput.EventGestureSwipeUpdate: EventTypeGestureSwipeUpdate,
	libinput.EventGestureSwipeEnd:    EventTypeGestureSwipeEnd,
	libinput.EventGesturePinchBegin:  EventTypeGesturePinchBegin,
	libinput.EventGesturePinchUpdate: EventTypeGesturePinchUpdate,
	libinput.EventGesturePinchEnd:    EventTypeGesturePinchEnd,
	libinput.EventGestureHoldBegin:   EventTypeGestureHoldBegin,
	libinput.EventGestureHoldEnd:     EventTypeGestureHoldEnd,

	libinput.EventSwitchToggle: EventTypeSwitchToggle,
}

var eventTypeNames = map[EventType]string{
	EventTypeNone:                    "none",
	EventTypeDeviceAdded:             "device-added",
	EventTypeDeviceRemoved:           "device-removed",
	EventTypeKeyboardKey:             "keyboard-key",
	EventTypePointerMotion:           "pointer-motion",
	EventTypePointerMotionAbsolute:   "pointer-motion-absolute",
	EventTypePointerButton:           "pointer-button",
	EventTypePointerAxis:             "pointer-axis",
	EventTypePointerScrollWheel:      "pointer-scroll-wheel",
	EventTypePointerScrollFinger:     "pointer-scroll-finger",
	EventTypePointerScrollContinuous: "pointer-scroll-continuous",
	EventTypeTouchDown:               "touch-down",
	EventTypeTouchUp:                 "touch-up",
	EventTypeTouchMotion:             "touch-motion",
	EventTypeTouchCancel:             "touch-cancel",
	EventTypeTouchFrame:              "touch-frame",
	EventTypeTabletToolAxis:          "tablet-tool-axis",
	EventTypeTabletToolProximity:     "tablet-tool-proximity",
	EventTypeTabletToolTip:           "tablet-tool-tip",
	EventTypeTabletToolButton:        "tablet-tool-button",
	EventTypeTabletPadButton:         "tablet-pad-button",
	EventTypeTabletPadRing:           "tablet-pad-ring",
	EventTypeTabletPadStrip:          "tablet-pad-strip",
	EventTypeTabletPadKey:            "tablet-pad-key",
	EventTypeGestureSwipeBegin:       "gesture-swipe-begin",
	EventTypeGestureSwipeUpdate:      "gesture-swipe-update",
	EventTypeGestureSwipeEnd:         "gesture-swipe-end",
	EventTypeGesturePinchBegin:       "gesture-pinch-begin",
	EventTypeGesturePinchUpdate:      "gesture-pinch-update",
	EventTypeGesturePinchEnd:         "gesture-pinch-end",
	EventTypeGestureHoldBegin:        "gesture-hold-begin",
	EventTypeGestureHoldEnd:          "gesture-hold-end",
	EventTypeSwitchToggle:            "switch-toggle",
}

// String returns the event type name.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// eventTypeFromCode translates a native event type code. Unknown codes map
// to EventTypeUnknown and never fail.
func eventTypeFromCode(code uint32) EventType {
	if t, ok := eventTypeCodes[code]; ok {
		return t
	}
	warnf("unknown event type code from libinput: %d", code)
	return EventTypeUnknown
}

// IsTabletTool reports whether the type is one of the tablet tool events.
func (t EventType) IsTabletTool() bool {
	switch t {
	case EventTypeTabletToolAxis, EventTypeTabletToolProximity,
		EventTypeTabletToolTip, EventTypeTabletToolButton:
		return true
	}
	return false
}

// IsPointer reports whether the type is one of the pointer events.
func (t EventType) IsPointer() bool {
	switch t {
	case EventTypePointerMotion, EventTypePointerMotionAbsolute,
		EventTypePointerButton, EventTypePointerAxis,
		EventTypePointerScrollWheel, EventTypePointerScrollFinger,
		EventTypePointerScrollContinuous:
		return true
	}
	return false
}

// IsTouch reports whether the type is one of the touch events.
func (t EventType) IsTouch() bool {
	switch t {
	case EventTypeTouchDown, EventTypeTouchUp, EventTypeTouchMotion,
		EventTypeTouchCancel, EventTypeTouchFrame:
		return true
	}
	return false
}

// Event is a single event pulled off a context with NextEvent. Unlike the
// refcounted wrappers, an event is owned outright: Close destroys it. Typed
// views (Pointer, Keyboard, Touch, TabletTool) borrow the event and are only
// valid until it is closed.
type Event struct {
	ptr libinput.Event
}

// wrapEvent takes ownership of a raw event handle.
func wrapEvent(raw libinput.Event) *Event {
	if raw == nil {
		return nil
	}
	return &Event{ptr: raw}
}

// Type returns the event's type, or EventTypeUnknown for codes this package
// does not know.
func (e *Event) Type() EventType {
	if e == nil || e.ptr == nil {
		return EventTypeNone
	}
	return eventTypeFromCode(libinput.EventGetType(e.ptr))
}

// Device returns the device that generated the event. The returned Device
// holds its own reference and must be closed by the caller.
func (e *Event) Device() *Device {
	if e == nil || e.ptr == nil {
		return nil
	}
	return wrapDeviceBorrowed(libinput.EventGetDevice(e.ptr))
}

// Close destroys the event. Idempotent; typed views become inert.
func (e *Event) Close() error {
	if e == nil || e.ptr == nil {
		return nil
	}
	libinput.EventDestroy(e.ptr)
	e.ptr = nil
	return nil
}

// Pointer returns the pointer view of the event, or nil if the event is not
// a pointer event.
func (e *Event) Pointer() *PointerEvent {
	if e == nil || e.ptr == nil || !e.Type().IsPointer() {
		return nil
	}
	return &PointerEvent{event: e, ptr: libinput.EventGetPointerEvent(e.ptr)}
}

// Keyboard returns the keyboard view of the event, or nil if the event is
// not a keyboard event.
func (e *Event) Keyboard() *KeyboardEvent {
	if e == nil || e.ptr == nil || e.Type() != EventTypeKeyboardKey {
		return nil
	}
	return &KeyboardEvent{event: e, ptr: libinput.EventGetKeyboardEvent(e.ptr)}
}

// Touch returns the touch view of the event, or nil if the event is not a
// touch event.
func (e *Event) Touch() *TouchEvent {
	if e == nil || e.ptr == nil || !e.Type().IsTouch() {
		return nil
	}
	return &TouchEvent{event: e, ptr: libinput.EventGetTouchEvent(e.ptr)}
}

// TabletTool returns the tablet tool view of the event, or nil if the event
// is not a tablet tool event.
func (e *Event) TabletTool() *TabletToolEvent {
	if e == nil || e.ptr == nil || !e.Type().IsTabletTool() {
		return nil
	}
	return &TabletToolEvent{event: e, ptr: libinput.EventGetTabletToolEvent(e.ptr)}
}
