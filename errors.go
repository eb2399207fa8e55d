//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"errors"

	"github.com/obinnaokechukwu/inputgo/internal/bindings"
)

// Common errors
var (
	// ErrNotLoaded indicates the native libraries are not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates libinput or libudev could not be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrClosed indicates the wrapper has already released its handle.
	ErrClosed = errors.New("inputgo: handle is closed")

	// ErrContextFailed indicates libinput refused to create a context.
	ErrContextFailed = errors.New("inputgo: failed to create libinput context")

	// ErrAssignSeat indicates the udev backend could not be bound to a seat.
	ErrAssignSeat = errors.New("inputgo: failed to assign seat")

	// ErrAddDevice indicates a device node could not be added to a path context.
	ErrAddDevice = errors.New("inputgo: failed to add device")

	// ErrResume indicates a suspended context could not reopen its devices.
	ErrResume = errors.New("inputgo: failed to resume context")
)
