//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"testing"

	"github.com/obinnaokechukwu/inputgo/libinput"
)

func TestEventTypeTranslation(t *testing.T) {
	tests := []struct {
		code uint32
		want EventType
	}{
		{libinput.EventNone, EventTypeNone},
		{libinput.EventDeviceAdded, EventTypeDeviceAdded},
		{libinput.EventDeviceRemoved, EventTypeDeviceRemoved},
		{libinput.EventKeyboardKey, EventTypeKeyboardKey},
		{libinput.EventPointerMotion, EventTypePointerMotion},
		{libinput.EventPointerScrollWheel, EventTypePointerScrollWheel},
		{libinput.EventTouchDown, EventTypeTouchDown},
		{libinput.EventTabletToolAxis, EventTypeTabletToolAxis},
		{libinput.EventTabletToolProximity, EventTypeTabletToolProximity},
		{libinput.EventTabletToolTip, EventTypeTabletToolTip},
		{libinput.EventTabletToolButton, EventTypeTabletToolButton},
		{libinput.EventGestureHoldEnd, EventTypeGestureHoldEnd},
		{libinput.EventSwitchToggle, EventTypeSwitchToggle},
		// Reserved/future codes degrade to unknown, never panic.
		{299, EventTypeUnknown},
		{9999, EventTypeUnknown},
		{^uint32(0), EventTypeUnknown},
	}

	for _, tt := range tests {
		if got := eventTypeFromCode(tt.code); got != tt.want {
			t.Errorf("eventTypeFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestEventTypeCodesAreNamed(t *testing.T) {
	// Every translatable event type must have a name, so debug output never
	// prints "unknown" for a code the translator accepted.
	for code, typ := range eventTypeCodes {
		if typ == EventTypeNone {
			continue
		}
		if typ.String() == "unknown" {
			t.Errorf("event type for native code %d has no name", code)
		}
	}

	if EventTypeUnknown.String() != "unknown" {
		t.Errorf("EventTypeUnknown.String() = %q", EventTypeUnknown.String())
	}
}

func TestEventTypeClassPredicates(t *testing.T) {
	tabletTypes := []EventType{
		EventTypeTabletToolAxis, EventTypeTabletToolProximity,
		EventTypeTabletToolTip, EventTypeTabletToolButton,
	}
	for _, typ := range tabletTypes {
		if !typ.IsTabletTool() {
			t.Errorf("%v.IsTabletTool() = false", typ)
		}
		if typ.IsPointer() || typ.IsTouch() {
			t.Errorf("%v misclassified as pointer or touch", typ)
		}
	}

	if !EventTypePointerMotion.IsPointer() {
		t.Error("pointer-motion should be a pointer event")
	}
	if !EventTypeTouchFrame.IsTouch() {
		t.Error("touch-frame should be a touch event")
	}
	if EventTypeKeyboardKey.IsPointer() || EventTypeKeyboardKey.IsTouch() || EventTypeKeyboardKey.IsTabletTool() {
		t.Error("keyboard-key misclassified")
	}
}

func TestNilEventIsInert(t *testing.T) {
	var ev *Event

	if ev.Type() != EventTypeNone {
		t.Error("nil event should report type none")
	}
	if ev.Device() != nil {
		t.Error("nil event Device should return nil")
	}
	if ev.Pointer() != nil || ev.Keyboard() != nil || ev.Touch() != nil || ev.TabletTool() != nil {
		t.Error("nil event typed views should be nil")
	}
	if err := ev.Close(); err != nil {
		t.Errorf("nil event Close: %v", err)
	}
}

func TestClosedEventViewsAreInert(t *testing.T) {
	// A view constructed before Close must degrade to zero values after.
	ev := &Event{}
	view := &TabletToolEvent{event: ev}

	if view.live() != nil {
		t.Error("view of closed event should have no live handle")
	}
	if view.Pressure() != 0 || view.X() != 0 || view.Y() != 0 {
		t.Error("closed view should report zero axes")
	}
	if view.Tool() != nil {
		t.Error("closed view should not produce a tool")
	}
	if view.TipState() != TipUp || view.ProximityState() != ProximityOut {
		t.Error("closed view should report neutral states")
	}
}
