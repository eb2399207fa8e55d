//go:build (linux || freebsd) && (amd64 || arm64)

// Package platform provides platform detection and shared-library naming for
// inputgo. libinput only exists on Linux and the BSDs, so the supported
// surface is much narrower than a general-purpose FFI layer.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// inputgo only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
const LibraryExtension = ".so"

// LibraryPrefix is the prefix for shared library names on this platform.
const LibraryPrefix = "lib"

// FormatLibraryName returns the platform-specific library filename.
// If version is negative, returns the unversioned library name.
//
// Examples:
//   - FormatLibraryName("input", 10) -> "libinput.so.10"
//   - FormatLibraryName("udev", 1)   -> "libudev.so.1"
//   - FormatLibraryName("input", -1) -> "libinput.so"
func FormatLibraryName(name string, version int) string {
	if version >= 0 {
		return fmt.Sprintf("%s%s%s.%d", LibraryPrefix, name, LibraryExtension, version)
	}
	return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
