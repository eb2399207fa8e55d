//go:build (linux || freebsd) && (amd64 || arm64)

package libinput

import "unsafe"

// Tablet tool function bindings
var (
	liToolRef         func(tool unsafe.Pointer) unsafe.Pointer
	liToolUnref       func(tool unsafe.Pointer) unsafe.Pointer
	liToolGetSerial   func(tool unsafe.Pointer) uint64
	liToolGetToolID   func(tool unsafe.Pointer) uint64
	liToolGetType     func(tool unsafe.Pointer) uint32
	liToolHasButton   func(tool unsafe.Pointer, code uint32) int32
	liToolHasDistance func(tool unsafe.Pointer) int32
	liToolHasPressure func(tool unsafe.Pointer) int32
	liToolHasRotation func(tool unsafe.Pointer) int32
	liToolHasSlider   func(tool unsafe.Pointer) int32
	liToolHasTilt     func(tool unsafe.Pointer) int32
	liToolHasWheel    func(tool unsafe.Pointer) int32
	liToolIsUnique    func(tool unsafe.Pointer) int32

	// libinput >= 1.14
	liToolHasSize func(tool unsafe.Pointer) int32
)

func registerToolBindings(lib uintptr) {
	register(&liToolRef, lib, "libinput_tablet_tool_ref")
	register(&liToolUnref, lib, "libinput_tablet_tool_unref")
	register(&liToolGetSerial, lib, "libinput_tablet_tool_get_serial")
	register(&liToolGetToolID, lib, "libinput_tablet_tool_get_tool_id")
	register(&liToolGetType, lib, "libinput_tablet_tool_get_type")
	register(&liToolHasButton, lib, "libinput_tablet_tool_has_button")
	register(&liToolHasDistance, lib, "libinput_tablet_tool_has_distance")
	register(&liToolHasPressure, lib, "libinput_tablet_tool_has_pressure")
	register(&liToolHasRotation, lib, "libinput_tablet_tool_has_rotation")
	register(&liToolHasSlider, lib, "libinput_tablet_tool_has_slider")
	register(&liToolHasTilt, lib, "libinput_tablet_tool_has_tilt")
	register(&liToolHasWheel, lib, "libinput_tablet_tool_has_wheel")
	register(&liToolIsUnique, lib, "libinput_tablet_tool_is_unique")

	registerOptional(&liToolHasSize, lib, "libinput_tablet_tool_has_size")
}

// TabletToolRef increments a tool's reference count.
func TabletToolRef(tool TabletTool) TabletTool {
	if tool == nil || liToolRef == nil {
		return nil
	}
	return liToolRef(tool)
}

// TabletToolUnref decrements a tool's reference count. The tool is destroyed
// when the count reaches zero and the tool is not unique.
func TabletToolUnref(tool TabletTool) {
	if tool == nil || liToolUnref == nil {
		return
	}
	liToolUnref(tool)
}

// TabletToolGetSerial returns the serial number of a tool, or 0 if the tool
// does not report one.
func TabletToolGetSerial(tool TabletTool) uint64 {
	if tool == nil || liToolGetSerial == nil {
		return 0
	}
	return liToolGetSerial(tool)
}

// TabletToolGetToolID returns the vendor-specific tool ID, or 0 if the tablet
// does not support tool IDs.
func TabletToolGetToolID(tool TabletTool) uint64 {
	if tool == nil || liToolGetToolID == nil {
		return 0
	}
	return liToolGetToolID(tool)
}

// TabletToolGetType returns the raw tool type code (a TabletToolType* value).
func TabletToolGetType(tool TabletTool) uint32 {
	if tool == nil || liToolGetType == nil {
		return 0
	}
	return liToolGetType(tool)
}

// TabletToolHasButton reports whether the tool declares the given button code
// (see linux/input-event-codes.h). The code is passed through unvalidated.
func TabletToolHasButton(tool TabletTool, code uint32) bool {
	if tool == nil || liToolHasButton == nil {
		return false
	}
	return liToolHasButton(tool, code) != 0
}

// TabletToolHasDistance reports whether the tool supports a distance axis.
func TabletToolHasDistance(tool TabletTool) bool {
	if tool == nil || liToolHasDistance == nil {
		return false
	}
	return liToolHasDistance(tool) != 0
}

// TabletToolHasPressure reports whether the tool supports pressure.
func TabletToolHasPressure(tool TabletTool) bool {
	if tool == nil || liToolHasPressure == nil {
		return false
	}
	return liToolHasPressure(tool) != 0
}

// TabletToolHasRotation reports whether the tool supports z-rotation.
func TabletToolHasRotation(tool TabletTool) bool {
	if tool == nil || liToolHasRotation == nil {
		return false
	}
	return liToolHasRotation(tool) != 0
}

// TabletToolHasSlider reports whether the tool has a slider axis.
func TabletToolHasSlider(tool TabletTool) bool {
	if tool == nil || liToolHasSlider == nil {
		return false
	}
	return liToolHasSlider(tool) != 0
}

// TabletToolHasTilt reports whether the tool supports tilt.
func TabletToolHasTilt(tool TabletTool) bool {
	if tool == nil || liToolHasTilt == nil {
		return false
	}
	return liToolHasTilt(tool) != 0
}

// TabletToolHasWheel reports whether the tool has a relative wheel.
func TabletToolHasWheel(tool TabletTool) bool {
	if tool == nil || liToolHasWheel == nil {
		return false
	}
	return liToolHasWheel(tool) != 0
}

// TabletToolHasSize reports whether the tool reports contact size (ellipse
// major/minor). Always false on libinput < 1.14.
func TabletToolHasSize(tool TabletTool) bool {
	if tool == nil || liToolHasSize == nil {
		return false
	}
	return liToolHasSize(tool) != 0
}

// TabletToolIsUnique reports whether the physical tool can be uniquely
// identified, allowing it to be tracked across proximity-out sequences and
// across compatible tablets.
func TabletToolIsUnique(tool TabletTool) bool {
	if tool == nil || liToolIsUnique == nil {
		return false
	}
	return liToolIsUnique(tool) != 0
}
