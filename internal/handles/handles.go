//go:build (linux || freebsd) && (amd64 || arm64)

// Package handles provides a thread-safe handle system for storing Go objects
// that need to be referenced from native callbacks.
//
// libinput contexts carry a user_data pointer that is handed back to the
// open_restricted/close_restricted callbacks. We cannot store Go pointers in
// native memory, so the Go-side opener is registered here and the uintptr
// handle travels through user_data instead.
package handles

import (
	"sync"
)

var (
	mu      sync.RWMutex
	handles = make(map[uintptr]any)
	nextID  uintptr = 1
)

// Register stores a Go object and returns a handle ID.
// The handle can be safely stored in native memory (as uintptr or void*).
// The object will remain accessible until Unregister is called.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	handles[id] = v
	return id
}

// Lookup retrieves a Go object by its handle ID.
// Returns nil if the handle is not registered.
//
// Thread-safe.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return handles[id]
}

// Unregister removes a handle and allows the Go object to be garbage collected.
// Should be called once the native side can no longer invoke the callbacks,
// i.e. after the owning context is destroyed.
//
// Thread-safe.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(handles, id)
}

// Count returns the number of currently registered handles.
// Useful for debugging and testing leaks.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(handles)
}
