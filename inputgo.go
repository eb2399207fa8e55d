//go:build (linux || freebsd) && (amd64 || arm64)

// Package inputgo provides high-level bindings to libinput for reading input
// devices (tablets, pointers, keyboards, touchscreens) without CGO, using
// purego.
//
// The package wraps libinput's reference-counted native objects in typed
// values that manage the counts for construction, cloning, and release, so
// callers never see a raw handle. Create a Context with NewUdevContext or
// NewPathContext, pump it with Dispatch/NextEvent, and inspect the typed
// events it hands back.
//
// For advanced use cases the low-level libinput package is available.
package inputgo

import (
	"github.com/obinnaokechukwu/inputgo/internal/bindings"
)

// Init loads libinput and libudev. This is called automatically when a
// context is created, but can be called explicitly to check for errors.
// It is safe to call multiple times.
func Init() error {
	return bindings.Load()
}

// IsLoaded returns true if the native libraries have been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// HasToolSizeSupport reports whether the loaded libinput carries the 1.14
// tablet additions. When false, ToolTypeTotem is never produced and
// Tool.HasSize always returns false.
func HasToolSizeSupport() bool {
	return bindings.HasTabletV114()
}
